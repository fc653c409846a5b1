package save_lead

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	saveQuoteAsLead "github.com/resortdesk/quote-service/internal/usecase/save_quote_as_lead"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgQuoteAlreadySaved  = "quote is already saved in this lead"
	msgInvalidLead        = "invalid lead: customer name and a current, unconfirmed quote are required"
)

type Handler struct {
	useCase SaveQuoteAsLeadUseCase
	logger  Logger
}

func NewHandler(useCase SaveQuoteAsLeadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/leads
// 201 - создан новый лид, 200 - предложение добавлено к существующему
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, saveQuoteAsLead.ErrInvalidInput):
			h.logger.Warn("POST /leads - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLead)

		case errors.Is(err, saveQuoteAsLead.ErrQuoteAlreadySaved):
			h.logger.Warn("POST /leads - Quote already saved: quote_id=%s", req.Quote.ID)
			handlers.RespondConflict(w, msgQuoteAlreadySaved)

		default:
			h.logger.Error("POST /leads - Failed to save lead: quote_id=%s, error=%v", req.Quote.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /leads - Lead saved: lead_id=%d, created=%t", result.Lead.ID, result.Created)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
