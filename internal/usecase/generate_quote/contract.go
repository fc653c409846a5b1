package generate_quote

import (
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
)

// RateSource источник текущей тарифной таблицы
type RateSource interface {
	Current() *domain.RateTable
}

// QuoteRenderer формирует текст предложения для гостя
type QuoteRenderer interface {
	RenderQuoteText(cfg domain.QuoteConfiguration, b domain.QuoteBreakdown, customerName string) string
}

// Metrics метрики сгенерированных предложений
type Metrics interface {
	ObserveQuote(season string, total float64, roomFallbacks, mealFallbacks int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
