package parse_inquiry

import (
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/inquiry"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	parser InquiryParser
	logger Logger
}

func NewHandler(parser InquiryParser, logger Logger) *Handler {
	return &Handler{
		parser: parser,
		logger: logger,
	}
}

// Handle POST /api/v1/inquiries/parse
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ParseInquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inquiries/parse - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	parsed := h.parser.ParseInquiry(req.Text)
	contact := inquiry.ExtractContactInfo(req.Text)

	h.logger.Info("POST /inquiries/parse - Inquiry parsed: rooms=%d, adults=%d, children=%d, date_tokens=%d",
		len(parsed.Rooms), parsed.GuestCount.Adults, parsed.GuestCount.Children, len(parsed.DateTokens))
	handlers.RespondJSON(w, http.StatusOK, FromParsed(parsed, contact))
}
