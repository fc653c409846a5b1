package rates

import "github.com/resortdesk/quote-service/internal/domain"

// RateSource источник текущей тарифной таблицы
type RateSource interface {
	Current() *domain.RateTable
	Replace(table *domain.RateTable) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
