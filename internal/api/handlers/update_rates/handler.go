package update_rates

import (
	"errors"
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/service/rates"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRateTable   = "invalid rate table: rates must be non-negative and GST rates within [0, 1]"
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

// Handle PUT /api/v1/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var table domain.RateTable
	if err := handlers.DecodeJSON(r, &table); err != nil {
		h.logger.Warn("PUT /rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateRates(&table)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrInvalidRateTable):
			h.logger.Warn("PUT /rates - Invalid rate table: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidRateTable)

		default:
			h.logger.Error("PUT /rates - Failed to update rates: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rates - Rate table replaced: seasons=%d", len(updated.Seasons))
	handlers.RespondJSON(w, http.StatusOK, updated)
}
