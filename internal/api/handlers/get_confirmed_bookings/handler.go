package get_confirmed_bookings

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

// Handle GET /api/v1/bookings/confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ConfirmedBookings(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/confirmed - Failed to get confirmed bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
