package domain

import "time"

// LeadStatus статус лида в воронке продаж
type LeadStatus string

const (
	LeadStatusOpen           LeadStatus = "open"
	LeadStatusContacted      LeadStatus = "contacted"
	LeadStatusNegotiation    LeadStatus = "negotiation"
	LeadStatusNurturing      LeadStatus = "nurturing"
	LeadStatusWon            LeadStatus = "won"
	LeadStatusLostPrice      LeadStatus = "lost_price"
	LeadStatusLostCompetitor LeadStatus = "lost_competitor"
	LeadStatusLostTiming     LeadStatus = "lost_timing"
	LeadStatusLostOther      LeadStatus = "lost_other"
)

// LeadStatuses все статусы в порядке воронки
var LeadStatuses = []LeadStatus{
	LeadStatusOpen,
	LeadStatusContacted,
	LeadStatusNegotiation,
	LeadStatusNurturing,
	LeadStatusWon,
	LeadStatusLostPrice,
	LeadStatusLostCompetitor,
	LeadStatusLostTiming,
	LeadStatusLostOther,
}

// IsValid проверяет, что статус входит в перечисление
func (s LeadStatus) IsValid() bool {
	for _, st := range LeadStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsLost возвращает true для всех lost_* статусов
func (s LeadStatus) IsLost() bool {
	switch s {
	case LeadStatusLostPrice, LeadStatusLostCompetitor, LeadStatusLostTiming, LeadStatusLostOther:
		return true
	default:
		return false
	}
}

// IsTerminal won или любой lost_*: напоминания не нужны
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusWon || s.IsLost()
}

// Lead потенциальный клиент
type Lead struct {
	ID              int64
	Name            string
	Mobile          string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Status          LeadStatus
	QuoteVariations []Quote // только добавление
	ReminderAt      *time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LatestQuote последний вариант предложения или nil
func (l *Lead) LatestQuote() *Quote {
	if len(l.QuoteVariations) == 0 {
		return nil
	}
	return &l.QuoteVariations[len(l.QuoteVariations)-1]
}

// FirstQuotedAt время первого предложения (для сортировки newest/oldest)
func (l *Lead) FirstQuotedAt() time.Time {
	if len(l.QuoteVariations) == 0 {
		return time.Time{}
	}
	return l.QuoteVariations[0].CreatedAt
}

// LatestTotal итог последнего предложения, 0 если предложений нет
func (l *Lead) LatestTotal() float64 {
	if q := l.LatestQuote(); q != nil {
		return q.Breakdown.Total
	}
	return 0
}

// IsReminderDue напоминание назначено и уже наступило
func (l *Lead) IsReminderDue(now time.Time) bool {
	return l.ReminderAt != nil && !l.ReminderAt.After(now)
}

// LeadSort порядок сортировки списка лидов
type LeadSort string

const (
	LeadSortNewest  LeadSort = "newest"
	LeadSortOldest  LeadSort = "oldest"
	LeadSortCheckIn LeadSort = "checkin"
	LeadSortValue   LeadSort = "value"
)

// IsValid проверяет порядок сортировки
func (s LeadSort) IsValid() bool {
	switch s {
	case LeadSortNewest, LeadSortOldest, LeadSortCheckIn, LeadSortValue:
		return true
	default:
		return false
	}
}
