package leads

import (
	"context"
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
)

// LeadRepository интерфейс репозитория лидов
type LeadRepository interface {
	GetAll(ctx context.Context) ([]*domain.Lead, error)
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	GetByStatus(ctx context.Context, status domain.LeadStatus) ([]*domain.Lead, error)
	GetDueReminders(ctx context.Context, now time.Time) ([]*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReminderScheduler вычисляет время следующего напоминания по статусу
type ReminderScheduler interface {
	NextReminder(status domain.LeadStatus) *time.Time
}

// ReminderDispatcher ставит напоминание в очередь доставки
type ReminderDispatcher interface {
	Schedule(ctx context.Context, leadID int64, at time.Time) error
}

// ConfirmationRenderer формирует текст подтверждения бронирования
type ConfirmationRenderer interface {
	RenderConfirmationText(lead *domain.Lead, quote *domain.Quote, advance *float64) string
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
