package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/infra/storage/lead"
	"github.com/resortdesk/quote-service/pkg/clock"
)

// LeadRepository хранилище лидов в памяти процесса.
// Возвращает ошибки пакета lead, поэтому взаимозаменяемо с PostgreSQL-репозиторием.
// Наружу отдаются копии: изменение результата не меняет хранилище.
type LeadRepository struct {
	mu     sync.RWMutex
	clock  clock.Clock
	nextID int64
	leads  map[int64]*domain.Lead
}

// NewLeadRepository создает пустое хранилище
func NewLeadRepository(c clock.Clock) *LeadRepository {
	if c == nil {
		c = clock.Real{}
	}
	return &LeadRepository{
		clock:  c,
		nextID: 1,
		leads:  make(map[int64]*domain.Lead),
	}
}

func (r *LeadRepository) Create(_ context.Context, l *domain.Lead) (*domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	l.ID = r.nextID
	l.CreatedAt = now
	l.UpdatedAt = now
	r.nextID++

	r.leads[l.ID] = clone(l)
	return l, nil
}

func (r *LeadRepository) GetByID(_ context.Context, id int64) (*domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leads[id]
	if !ok {
		return nil, lead.ErrLeadNotFound
	}
	return clone(l), nil
}

func (r *LeadRepository) GetByMobileAndCheckIn(_ context.Context, mobile string, checkIn time.Time) (*domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *domain.Lead
	for _, l := range r.leads {
		if l.Mobile != mobile || !sameDate(l.CheckInDate, checkIn) {
			continue
		}
		if found == nil || l.ID > found.ID {
			found = l
		}
	}

	if found == nil {
		return nil, lead.ErrLeadNotFound
	}
	return clone(found), nil
}

func (r *LeadRepository) GetAll(_ context.Context) ([]*domain.Lead, error) {
	return r.filter(func(*domain.Lead) bool { return true }, newestFirst), nil
}

func (r *LeadRepository) GetByStatus(_ context.Context, status domain.LeadStatus) ([]*domain.Lead, error) {
	return r.filter(func(l *domain.Lead) bool { return l.Status == status }, newestFirst), nil
}

func (r *LeadRepository) GetDueReminders(_ context.Context, now time.Time) ([]*domain.Lead, error) {
	due := func(l *domain.Lead) bool {
		return !l.Status.IsTerminal() && l.IsReminderDue(now)
	}
	byReminder := func(a, b *domain.Lead) bool {
		return a.ReminderAt.Before(*b.ReminderAt)
	}
	return r.filter(due, byReminder), nil
}

func (r *LeadRepository) Update(_ context.Context, l *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.leads[l.ID]
	if !ok {
		return lead.ErrLeadNotFound
	}

	l.CreatedAt = existing.CreatedAt
	l.UpdatedAt = r.clock.Now()
	r.leads[l.ID] = clone(l)
	return nil
}

func (r *LeadRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return lead.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *LeadRepository) filter(keep func(*domain.Lead) bool, less func(a, b *domain.Lead) bool) []*domain.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		if keep(l) {
			result = append(result, clone(l))
		}
	}

	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })
	return result
}

func newestFirst(a, b *domain.Lead) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func sameDate(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && b.IsZero()
	}
	return domain.DateOnly(a).Equal(domain.DateOnly(b))
}

func clone(l *domain.Lead) *domain.Lead {
	c := *l
	if l.ReminderAt != nil {
		t := *l.ReminderAt
		c.ReminderAt = &t
	}

	c.QuoteVariations = make([]domain.Quote, len(l.QuoteVariations))
	for i, q := range l.QuoteVariations {
		c.QuoteVariations[i] = cloneQuote(q)
	}
	return &c
}

func cloneQuote(q domain.Quote) domain.Quote {
	q.Configuration.Rooms = append([]domain.RoomConfiguration(nil), q.Configuration.Rooms...)
	q.Configuration.MealPlans = append([]domain.MealPlanCode(nil), q.Configuration.MealPlans...)
	q.Breakdown.Items = append([]domain.LineItem(nil), q.Breakdown.Items...)
	q.Breakdown.Fallbacks = append([]domain.Fallback(nil), q.Breakdown.Fallbacks...)
	if q.BookingConfirmation != nil {
		bc := *q.BookingConfirmation
		if bc.AdvanceAmount != nil {
			amount := *bc.AdvanceAmount
			bc.AdvanceAmount = &amount
		}
		q.BookingConfirmation = &bc
	}
	return q
}
