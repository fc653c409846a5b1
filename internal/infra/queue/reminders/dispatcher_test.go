package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/resortdesk/quote-service/pkg/logger"
)

type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

type counterMetrics struct {
	scheduled int
	fired     int
}

func (c *counterMetrics) ObserveReminderScheduled() { c.scheduled++ }
func (c *counterMetrics) ObserveReminderFired()     { c.fired++ }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.NewWithWriter(io.Discard, "debug")
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) interface{} {
	for _, opt := range opts {
		if opt.Type() == typ {
			return opt.Value()
		}
	}
	return nil
}

func TestDispatcher_Schedule(t *testing.T) {
	client := new(MockEnqueuer)
	metrics := &counterMetrics{}
	d := NewDispatcher(client, "reminders", metrics, testLogger(t))

	at := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	client.On("EnqueueContext", mock.Anything, mock.MatchedBy(func(task *asynq.Task) bool {
		var p Payload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return false
		}
		return task.Type() == TypeLeadReminder && p.LeadID == 7 && p.ReminderAt.Equal(at)
	}), mock.MatchedBy(func(opts []asynq.Option) bool {
		return optionValue(opts, asynq.ProcessAtOpt) == at &&
			optionValue(opts, asynq.QueueOpt) == "reminders" &&
			optionValue(opts, asynq.TaskIDOpt) == "lead:7:reminder:1764590400"
	})).Return(&asynq.TaskInfo{ID: "lead:7:reminder:1764590400"}, nil).Once()

	require.NoError(t, d.Schedule(context.Background(), 7, at))
	assert.Equal(t, 1, metrics.scheduled)
	client.AssertExpectations(t)
}

func TestDispatcher_Schedule_DuplicateIsNotError(t *testing.T) {
	client := new(MockEnqueuer)
	metrics := &counterMetrics{}
	d := NewDispatcher(client, "", metrics, testLogger(t))

	client.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, asynq.ErrTaskIDConflict).Once()

	assert.NoError(t, d.Schedule(context.Background(), 7, time.Now()))
	assert.Equal(t, 0, metrics.scheduled)
}

func TestDispatcher_Schedule_EnqueueError(t *testing.T) {
	client := new(MockEnqueuer)
	d := NewDispatcher(client, "", nil, testLogger(t))

	client.On("EnqueueContext", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("redis: connection refused")).Once()

	err := d.Schedule(context.Background(), 7, time.Now())
	assert.ErrorIs(t, err, ErrEnqueue)
}

func TestNoopDispatcher(t *testing.T) {
	assert.NoError(t, NoopDispatcher{}.Schedule(context.Background(), 1, time.Now()))
}
