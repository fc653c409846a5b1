package get_season

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/service/rates"
)

const msgInvalidDate = "query parameter date must be YYYY-MM-DD"

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

// Handle GET /api/v1/rates/season?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	season, err := h.service.GetSeason(date)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrInvalidInput):
			h.logger.Warn("GET /rates/season - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rates/season - Failed to resolve season: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, season)
}
