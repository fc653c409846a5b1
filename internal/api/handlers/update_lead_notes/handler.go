package update_lead_notes

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/service/leads"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

const (
	msgInvalidLeadID      = "invalid lead ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotesTooLong       = "notes are too long"
	msgNotFound           = "lead not found"
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

// Handle PATCH /api/v1/leads/{leadId}/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID, err := handlers.PathInt64(r, "leadId")
	if err != nil {
		h.logger.Warn("PATCH /leads/{id}/notes - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	var req models.UpdateNotesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /leads/{id}/notes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	lead, err := h.service.UpdateNotes(r.Context(), leadID, &req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("PATCH /leads/{id}/notes - Notes too long: lead_id=%d", leadID)
			handlers.RespondBadRequest(w, msgNotesTooLong)

		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("PATCH /leads/{id}/notes - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /leads/{id}/notes - Failed to update notes: lead_id=%d, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, lead)
}
