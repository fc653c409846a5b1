package get_rates

import "github.com/resortdesk/quote-service/internal/domain"

type RatesService interface {
	GetRates() (*domain.RateTable, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
