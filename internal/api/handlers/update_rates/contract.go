package update_rates

import "github.com/resortdesk/quote-service/internal/domain"

type RatesService interface {
	UpdateRates(table *domain.RateTable) (*domain.RateTable, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
