package reminders

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/resortdesk/quote-service/internal/domain"
)

// Enqueuer интерфейс постановки задач (реализуется *asynq.Client)
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// LeadReader читает лида для проверки актуальности напоминания
type LeadReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
}

// Metrics счетчики напоминаний
type Metrics interface {
	ObserveReminderScheduled()
	ObserveReminderFired()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
