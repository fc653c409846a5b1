package leads

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/resortdesk/quote-service/internal/domain"
	leadRepo "github.com/resortdesk/quote-service/internal/infra/storage/lead"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

// Service сервис для работы с лидами
type Service struct {
	leadRepo   LeadRepository
	txManager  TransactionManager
	scheduler  ReminderScheduler
	dispatcher ReminderDispatcher
	renderer   ConfirmationRenderer
	metrics    Metrics
	clock      TimeProvider
	logger     Logger
}

// NewService создает новый экземпляр сервиса лидов
func NewService(
	leadRepo LeadRepository,
	txManager TransactionManager,
	scheduler ReminderScheduler,
	dispatcher ReminderDispatcher,
	renderer ConfirmationRenderer,
	metrics Metrics,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		leadRepo:   leadRepo,
		txManager:  txManager,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		renderer:   renderer,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

// List возвращает лиды с фильтрацией по статусу, поиском и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListLeadsRequest) (*models.LeadListResponse, error) {
	s.logger.Info("List: fetching leads status=%v, search=%q, sort=%s", req.Status, req.Search, req.Sort)

	sortBy := domain.LeadSortNewest
	if req.Sort != "" {
		sortBy = domain.LeadSort(req.Sort)
		if !sortBy.IsValid() {
			s.logger.Warn("List: invalid sort=%s", req.Sort)
			return nil, fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, req.Sort)
		}
	}

	var (
		leads []*domain.Lead
		err   error
	)
	if req.Status != nil {
		status := domain.LeadStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		leads, err = s.leadRepo.GetByStatus(ctx, status)
	} else {
		leads, err = s.leadRepo.GetAll(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	leads = searchLeads(leads, req.Search)
	sortLeads(leads, sortBy)

	s.logger.Info("List: successfully fetched %d leads", len(leads))
	return models.FromDomainLeadList(leads, s.clock.Now()), nil
}

// GetByID получает лид по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LeadResponse, error) {
	s.logger.Info("GetByID: fetching lead id=%d", id)

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translateRepoError("GetByID", id, err)
	}

	s.logger.Info("GetByID: successfully fetched lead id=%d", id)
	return models.FromDomainLead(lead, s.clock.Now()), nil
}

// UpdateStatus меняет статус лида и пересчитывает напоминание.
// Для won и lost_* напоминание снимается.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.LeadResponse, error) {
	s.logger.Info("UpdateStatus: lead id=%d, status=%s", id, req.Status)

	status := domain.LeadStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for lead id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	var updated *domain.Lead
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lead, err := s.leadRepo.GetByID(ctx, id)
		if err != nil {
			return s.translateRepoError("UpdateStatus", id, err)
		}

		lead.Status = status
		lead.ReminderAt = s.scheduler.NextReminder(status)

		if err := s.leadRepo.Update(ctx, lead); err != nil {
			return s.translateRepoError("UpdateStatus", id, err)
		}
		updated = lead
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveStatusChange(string(status))
	s.scheduleReminder(ctx, updated)

	s.logger.Info("UpdateStatus: lead id=%d moved to status=%s, reminder=%v", id, status, updated.ReminderAt)
	return models.FromDomainLead(updated, s.clock.Now()), nil
}

// UpdateNotes заменяет заметки лида
func (s *Service) UpdateNotes(ctx context.Context, id int64, req *models.UpdateNotesRequest) (*models.LeadResponse, error) {
	s.logger.Info("UpdateNotes: lead id=%d", id)

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("UpdateNotes: notes too long for lead id=%d", id)
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var updated *domain.Lead
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lead, err := s.leadRepo.GetByID(ctx, id)
		if err != nil {
			return s.translateRepoError("UpdateNotes", id, err)
		}

		lead.Notes = req.Notes
		if err := s.leadRepo.Update(ctx, lead); err != nil {
			return s.translateRepoError("UpdateNotes", id, err)
		}
		updated = lead
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateNotes: successfully updated notes for lead id=%d", id)
	return models.FromDomainLead(updated, s.clock.Now()), nil
}

// Delete удаляет лид
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting lead id=%d", id)

	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return s.translateRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted lead id=%d", id)
	return nil
}

// DueReminders возвращает лиды, напоминание по которым уже наступило
func (s *Service) DueReminders(ctx context.Context) (*models.LeadListResponse, error) {
	now := s.clock.Now()
	s.logger.Info("DueReminders: fetching reminders due at %s", now.Format(time.RFC3339))

	leads, err := s.leadRepo.GetDueReminders(ctx, now)
	if err != nil {
		s.logger.Error("DueReminders: repository error: %v", err)
		return nil, fmt.Errorf("%w: DueReminders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DueReminders: %d leads need follow-up", len(leads))
	return models.FromDomainLeadList(leads, now), nil
}

// ConfirmBooking прикрепляет подтверждение бронирования к последнему предложению.
// Лид должен быть в статусе won и иметь хотя бы одно предложение.
func (s *Service) ConfirmBooking(ctx context.Context, id int64, req *models.ConfirmBookingRequest) (*models.ConfirmationResponse, error) {
	s.logger.Info("ConfirmBooking: lead id=%d, advance=%v", id, req.AdvanceAmount)

	if req.AdvanceAmount != nil && *req.AdvanceAmount < 0 {
		s.logger.Warn("ConfirmBooking: negative advance for lead id=%d", id)
		return nil, fmt.Errorf("%w: advance amount cannot be negative", ErrInvalidInput)
	}

	var (
		updated *domain.Lead
		quote   *domain.Quote
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lead, err := s.leadRepo.GetByID(ctx, id)
		if err != nil {
			return s.translateRepoError("ConfirmBooking", id, err)
		}

		if lead.Status != domain.LeadStatusWon {
			s.logger.Warn("ConfirmBooking: lead id=%d has status=%s", id, lead.Status)
			return ErrLeadNotWon
		}

		latest := lead.LatestQuote()
		if latest == nil {
			s.logger.Warn("ConfirmBooking: lead id=%d has no quotes", id)
			return ErrNoQuotes
		}

		latest.BookingConfirmation = &domain.BookingConfirmation{
			ConfirmationText: s.renderer.RenderConfirmationText(lead, latest, req.AdvanceAmount),
			GeneratedAt:      s.clock.Now().UTC(),
			AdvanceAmount:    req.AdvanceAmount,
		}

		if err := s.leadRepo.Update(ctx, lead); err != nil {
			return s.translateRepoError("ConfirmBooking", id, err)
		}
		updated = lead
		quote = latest
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ConfirmBooking: confirmation attached to quote id=%s of lead id=%d", quote.ID, id)
	return &models.ConfirmationResponse{
		LeadID:       updated.ID,
		QuoteID:      quote.ID,
		Confirmation: *quote.BookingConfirmation,
		WhatsAppLink: models.WhatsAppLink(updated.Mobile, quote.BookingConfirmation.ConfirmationText),
	}, nil
}

// ConfirmedBookings возвращает выигранные лиды и сводку по выручке
func (s *Service) ConfirmedBookings(ctx context.Context) (*models.ConfirmedBookingsResponse, error) {
	s.logger.Info("ConfirmedBookings: fetching won leads")

	leads, err := s.leadRepo.GetByStatus(ctx, domain.LeadStatusWon)
	if err != nil {
		s.logger.Error("ConfirmedBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ConfirmedBookings - repository error: %v", ErrInternal, err)
	}

	now := s.clock.Now()
	resp := &models.ConfirmedBookingsResponse{
		Bookings: make([]*models.ConfirmedBooking, 0, len(leads)),
	}
	for _, lead := range leads {
		booking := &models.ConfirmedBooking{
			Lead:  models.FromDomainLead(lead, now),
			Total: lead.LatestTotal(),
		}
		if q := lead.LatestQuote(); q != nil {
			booking.Confirmation = q.BookingConfirmation
		}
		resp.Bookings = append(resp.Bookings, booking)
		resp.Summary.TotalRevenue += booking.Total
	}

	resp.Summary.Count = len(resp.Bookings)
	if resp.Summary.Count > 0 {
		resp.Summary.AverageValue = resp.Summary.TotalRevenue / float64(resp.Summary.Count)
	}

	s.logger.Info("ConfirmedBookings: %d bookings, revenue=%.2f", resp.Summary.Count, resp.Summary.TotalRevenue)
	return resp, nil
}

// scheduleReminder ставит напоминание в очередь после коммита.
// Ошибка очереди не откатывает смену статуса.
func (s *Service) scheduleReminder(ctx context.Context, lead *domain.Lead) {
	if lead.ReminderAt == nil {
		return
	}
	if err := s.dispatcher.Schedule(ctx, lead.ID, *lead.ReminderAt); err != nil {
		s.logger.Error("scheduleReminder: failed to enqueue reminder for lead id=%d: %v", lead.ID, err)
	}
}

func (s *Service) translateRepoError(op string, id int64, err error) error {
	if errors.Is(err, leadRepo.ErrLeadNotFound) {
		s.logger.Warn("%s: lead id=%d not found", op, id)
		return ErrLeadNotFound
	}
	s.logger.Error("%s: repository error for lead id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// searchLeads оставляет лиды, у которых имя, мобильный или дата заезда содержат подстроку
func searchLeads(leads []*domain.Lead, search string) []*domain.Lead {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return leads
	}

	result := make([]*domain.Lead, 0, len(leads))
	for _, l := range leads {
		if strings.Contains(strings.ToLower(l.Name), search) ||
			strings.Contains(l.Mobile, search) ||
			strings.Contains(domain.FormatDate(l.CheckInDate), search) {
			result = append(result, l)
		}
	}
	return result
}

func sortLeads(leads []*domain.Lead, by domain.LeadSort) {
	createdAt := func(l *domain.Lead) time.Time {
		if t := l.FirstQuotedAt(); !t.IsZero() {
			return t
		}
		return l.CreatedAt
	}

	var less func(a, b *domain.Lead) bool
	switch by {
	case domain.LeadSortOldest:
		less = func(a, b *domain.Lead) bool { return createdAt(a).Before(createdAt(b)) }
	case domain.LeadSortCheckIn:
		less = func(a, b *domain.Lead) bool { return a.CheckInDate.Before(b.CheckInDate) }
	case domain.LeadSortValue:
		less = func(a, b *domain.Lead) bool { return a.LatestTotal() > b.LatestTotal() }
	default:
		less = func(a, b *domain.Lead) bool { return createdAt(a).After(createdAt(b)) }
	}

	sort.SliceStable(leads, func(i, j int) bool { return less(leads[i], leads[j]) })
}
