package generate_quote

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	generateQuote "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange   = "check-out date must be after check-in date"
	msgCheckInInPast      = "check-in date cannot be in the past"
	msgInvalidQuote       = "invalid quote request: check rooms, occupancy, client type and discount"
)

type Handler struct {
	useCase GenerateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GenerateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuote)

		case errors.Is(err, generateQuote.ErrInvalidDateRange):
			h.logger.Warn("POST /quotes - Invalid date range: checkIn=%s, checkOut=%s", req.Dates.CheckIn, req.Dates.CheckOut)
			handlers.RespondUnprocessable(w, msgInvalidDateRange)

		case errors.Is(err, generateQuote.ErrCheckInInPast):
			h.logger.Warn("POST /quotes - Check-in in the past: checkIn=%s", req.Dates.CheckIn)
			handlers.RespondUnprocessable(w, msgCheckInInPast)

		default:
			h.logger.Error("POST /quotes - Failed to generate quote: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote generated successfully: quote_id=%s, total=%.2f",
		result.Quote.ID, result.Quote.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
