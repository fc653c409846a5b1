package confirm_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/service/leads"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

const (
	msgInvalidLeadID      = "invalid lead ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAdvance     = "advance amount cannot be negative"
	msgNotFound           = "lead not found"
	msgLeadNotWon         = "booking can be confirmed only for won leads"
	msgNoQuotes           = "lead has no quotes to confirm"
)

type Handler struct {
	service LeadsService
	logger  Logger
}

func NewHandler(service LeadsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/leads/{leadId}/confirmation
// Тело необязательно: {"advanceAmount": 5000}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID, err := handlers.PathInt64(r, "leadId")
	if err != nil {
		h.logger.Warn("POST /leads/{id}/confirmation - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	var req models.ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /leads/{id}/confirmation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.ConfirmBooking(r.Context(), leadID, &req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("POST /leads/{id}/confirmation - Invalid advance: lead_id=%d", leadID)
			handlers.RespondBadRequest(w, msgInvalidAdvance)

		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("POST /leads/{id}/confirmation - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, leads.ErrLeadNotWon):
			h.logger.Warn("POST /leads/{id}/confirmation - Lead not won: lead_id=%d", leadID)
			handlers.RespondConflict(w, msgLeadNotWon)

		case errors.Is(err, leads.ErrNoQuotes):
			h.logger.Warn("POST /leads/{id}/confirmation - Lead has no quotes: lead_id=%d", leadID)
			handlers.RespondUnprocessable(w, msgNoQuotes)

		default:
			h.logger.Error("POST /leads/{id}/confirmation - Failed to confirm booking: lead_id=%d, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leads/{id}/confirmation - Booking confirmed: lead_id=%d, quote_id=%s", leadID, resp.QuoteID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
