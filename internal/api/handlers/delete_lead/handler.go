package delete_lead

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/service/leads"
)

const (
	msgInvalidLeadID = "invalid lead ID"
	msgNotFound      = "lead not found"
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

// Handle DELETE /api/v1/leads/{leadId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID, err := handlers.PathInt64(r, "leadId")
	if err != nil {
		h.logger.Warn("DELETE /leads/{id} - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	if err := h.service.Delete(r.Context(), leadID); err != nil {
		switch {
		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("DELETE /leads/{id} - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /leads/{id} - Failed to delete lead: lead_id=%d, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /leads/{id} - Lead deleted: lead_id=%d", leadID)
	w.WriteHeader(http.StatusNoContent)
}
