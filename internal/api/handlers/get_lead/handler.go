package get_lead

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

// Handle GET /api/v1/leads/{leadId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID, err := handlers.PathInt64(r, "leadId")
	if err != nil {
		h.logger.Warn("GET /leads/{id} - Invalid lead ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeadID)
		return
	}

	lead, err := h.service.GetByID(r.Context(), leadID)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("GET /leads/{id} - Lead not found: lead_id=%d", leadID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /leads/{id} - Failed to get lead: lead_id=%d, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, lead)
}
