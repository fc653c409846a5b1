package get_rates

import (
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
)

type Handler struct {
	service RatesService
	logger  Logger
}

func NewHandler(service RatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.GetRates()
	if err != nil {
		h.logger.Error("GET /rates - Failed to get rates: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, table)
}
