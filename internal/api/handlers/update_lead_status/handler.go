package update_lead_status

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
	msgInvalidStatus      = "invalid lead status"
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

// Handle PATCH /api/v1/leads/{leadId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID, err := handlers.PathInt64(r, "leadId")
	if err != nil {
		h.logger.Warn("PATCH /leads/{id}/status - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /leads/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	lead, err := h.service.UpdateStatus(r.Context(), leadID, &req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidStatus):
			h.logger.Warn("PATCH /leads/{id}/status - Invalid status: lead_id=%d, status=%q", leadID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("PATCH /leads/{id}/status - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /leads/{id}/status - Failed to update status: lead_id=%d, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /leads/{id}/status - Status updated: lead_id=%d, status=%s", leadID, lead.Status)
	handlers.RespondJSON(w, http.StatusOK, lead)
}
