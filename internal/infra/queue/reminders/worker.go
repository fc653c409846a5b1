package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/resortdesk/quote-service/internal/infra/storage/lead"
)

// Handler обрабатывает наступившие напоминания
type Handler struct {
	leads   LeadReader
	metrics Metrics
	logger  Logger
}

// NewHandler создает обработчик задач напоминаний
func NewHandler(leads LeadReader, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		leads:   leads,
		metrics: metrics,
		logger:  logger,
	}
}

// ProcessTask реализует asynq.Handler.
// Устаревшие задачи (статус сменился, напоминание перенесено, лид удален) пропускаются.
func (h *Handler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload Payload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		h.logger.Error("ProcessTask: invalid payload, error=%v", err)
		return fmt.Errorf("decode reminder payload: %v: %w", err, asynq.SkipRetry)
	}

	l, err := h.leads.GetByID(ctx, payload.LeadID)
	if errors.Is(err, lead.ErrLeadNotFound) {
		h.logger.Info("ProcessTask: lead deleted, skipping lead_id=%d", payload.LeadID)
		return nil
	}
	if err != nil {
		h.logger.Error("ProcessTask: failed to load lead_id=%d, error=%v", payload.LeadID, err)
		return err
	}

	if l.Status.IsTerminal() || l.ReminderAt == nil || !sameInstant(*l.ReminderAt, payload.ReminderAt) {
		h.logger.Info("ProcessTask: stale reminder, skipping lead_id=%d, status=%s", l.ID, l.Status)
		return nil
	}

	if h.metrics != nil {
		h.metrics.ObserveReminderFired()
	}

	h.logger.Warn("ProcessTask: follow-up due lead_id=%d, name=%q, mobile=%s, status=%s, due_at=%s",
		l.ID, l.Name, l.Mobile, l.Status, l.ReminderAt.UTC().Format(time.RFC3339))

	return nil
}

// sameInstant сравнивает с допуском в секунду: PostgreSQL округляет до микросекунд,
// и округление может перейти через границу секунды
func sameInstant(a, b time.Time) bool {
	return a.Sub(b).Abs() < time.Second
}

// ServerConfig параметры воркера напоминаний
type ServerConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
	Queue         string
}

// RedisOpt параметры подключения asynq к Redis
func (c ServerConfig) RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}

// NewServer создает asynq-сервер, обрабатывающий очередь напоминаний.
// Запуск - server.Start(NewServeMux(handler)), остановка - server.Shutdown().
func NewServer(cfg ServerConfig, logger Logger) *asynq.Server {
	queue := cfg.Queue
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return asynq.NewServer(cfg.RedisOpt(), asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queue: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("reminders worker: task failed type=%s, payload=%s, error=%v", task.Type(), string(task.Payload()), err)
		}),
	})
}

// NewServeMux регистрирует обработчик напоминаний
func NewServeMux(h *Handler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypeLeadReminder, h)
	return mux
}
