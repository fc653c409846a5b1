package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// Dispatcher ставит напоминания в очередь asynq на вычисленное время
type Dispatcher struct {
	client  Enqueuer
	queue   string
	metrics Metrics
	logger  Logger
}

// NewDispatcher создает диспетчер; пустая очередь означает "default"
func NewDispatcher(client Enqueuer, queue string, metrics Metrics, logger Logger) *Dispatcher {
	if queue == "" {
		queue = "default"
	}
	return &Dispatcher{
		client:  client,
		queue:   queue,
		metrics: metrics,
		logger:  logger,
	}
}

// Schedule ставит задачу напоминания для лида на время at
func (d *Dispatcher) Schedule(ctx context.Context, leadID int64, at time.Time) error {
	task, err := NewTask(leadID, at)
	if err != nil {
		d.logger.Error("Schedule: failed to build task lead_id=%d, error=%v", leadID, err)
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(at),
		asynq.Queue(d.queue),
		asynq.TaskID(taskID(leadID, at)),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		d.logger.Info("Schedule: reminder already queued lead_id=%d, at=%s", leadID, at.UTC().Format(time.RFC3339))
		return nil
	}
	if err != nil {
		d.logger.Error("Schedule: failed to enqueue lead_id=%d, error=%v", leadID, err)
		return fmt.Errorf("%w: Schedule - lead %d: %v", ErrEnqueue, leadID, err)
	}

	if d.metrics != nil {
		d.metrics.ObserveReminderScheduled()
	}

	d.logger.Info("Schedule: reminder queued lead_id=%d, task_id=%s, at=%s", leadID, info.ID, at.UTC().Format(time.RFC3339))
	return nil
}

// NoopDispatcher используется, когда очередь напоминаний выключена.
// Напоминания по-прежнему хранятся у лида и доступны через список просроченных.
type NoopDispatcher struct{}

func (NoopDispatcher) Schedule(context.Context, int64, time.Time) error {
	return nil
}
