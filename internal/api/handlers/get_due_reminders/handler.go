package get_due_reminders

import (
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
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

// Handle GET /api/v1/leads/reminders/due
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.DueReminders(r.Context())
	if err != nil {
		h.logger.Error("GET /leads/reminders/due - Failed to get due reminders: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
