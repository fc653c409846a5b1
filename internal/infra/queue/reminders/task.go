package reminders

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TypeLeadReminder тип задачи напоминания о лиде
const TypeLeadReminder = "lead:reminder"

// Payload данные задачи напоминания
type Payload struct {
	LeadID     int64     `json:"leadId"`
	ReminderAt time.Time `json:"reminderAt"`
}

// NewTask создает задачу напоминания
func NewTask(leadID int64, at time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(Payload{LeadID: leadID, ReminderAt: at.UTC()})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodePayload, err)
	}
	return asynq.NewTask(TypeLeadReminder, payload), nil
}

// taskID один идентификатор на пару (лид, время) - повторная постановка не дублирует задачу
func taskID(leadID int64, at time.Time) string {
	return fmt.Sprintf("lead:%d:reminder:%d", leadID, at.UTC().Unix())
}
