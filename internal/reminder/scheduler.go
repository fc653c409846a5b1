package reminder

import (
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/pkg/clock"
)

var offsets = map[domain.LeadStatus]time.Duration{
	domain.LeadStatusOpen:        domain.ReminderOffsetOpen,
	domain.LeadStatusContacted:   domain.ReminderOffsetContacted,
	domain.LeadStatusNegotiation: domain.ReminderOffsetNegotiation,
	domain.LeadStatusNurturing:   domain.ReminderOffsetNurturing,
}

// Scheduler вычисляет время следующего напоминания по статусу лида
type Scheduler struct {
	clock clock.Clock
}

// NewScheduler создает планировщик; nil clock означает системное время
func NewScheduler(c clock.Clock) *Scheduler {
	if c == nil {
		c = clock.Real{}
	}
	return &Scheduler{clock: c}
}

// NextReminder возвращает время следующего напоминания в UTC.
// Для won и lost_* возвращает nil: ранее запланированное напоминание снимается.
func (s *Scheduler) NextReminder(status domain.LeadStatus) *time.Time {
	offset, ok := offsets[status]
	if !ok {
		return nil
	}

	at := s.clock.Now().UTC().Add(offset)
	return &at
}

// Offset смещение напоминания для статуса; ok=false для статусов без напоминаний
func Offset(status domain.LeadStatus) (time.Duration, bool) {
	offset, ok := offsets[status]
	return offset, ok
}
