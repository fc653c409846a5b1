package list_leads

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/service/leads"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

const (
	msgInvalidStatus = "invalid lead status"
	msgInvalidSort   = "sort must be one of newest, oldest, checkin, value"
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

// Handle GET /api/v1/leads?status=&search=&sort=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListLeadsRequest{
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
	}
	if status := query.Get("status"); status != "" && status != "all" {
		req.Status = &status
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidStatus):
			h.logger.Warn("GET /leads - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("GET /leads - Invalid sort: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSort)

		default:
			h.logger.Error("GET /leads - Failed to list leads: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
