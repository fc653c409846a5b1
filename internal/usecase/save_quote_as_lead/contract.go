package save_quote_as_lead

import (
	"context"
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
)

// LeadRepository интерфейс репозитория лидов
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	GetByMobileAndCheckIn(ctx context.Context, mobile string, checkIn time.Time) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
}

// QuoteBuilder заново собирает присланное предложение по текущим тарифам
type QuoteBuilder interface {
	Rebuild(ctx context.Context, customerName string, quote domain.Quote) (*domain.Quote, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReminderScheduler вычисляет время следующего напоминания по статусу
type ReminderScheduler interface {
	NextReminder(status domain.LeadStatus) *time.Time
}

// ReminderDispatcher ставит напоминание в очередь доставки
type ReminderDispatcher interface {
	Schedule(ctx context.Context, leadID int64, at time.Time) error
}

// Metrics метрики воронки лидов
type Metrics interface {
	ObserveStatusChange(status string)
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
