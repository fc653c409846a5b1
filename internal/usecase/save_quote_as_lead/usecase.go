package save_quote_as_lead

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resortdesk/quote-service/internal/domain"
	leadRepo "github.com/resortdesk/quote-service/internal/infra/storage/lead"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

// UseCase use case для сохранения предложения как лида.
// Лиды дедуплицируются по мобильному номеру и дате заезда.
type UseCase struct {
	leadRepo      LeadRepository
	builder       QuoteBuilder
	txManager     TransactionManager
	scheduler     ReminderScheduler
	dispatcher    ReminderDispatcher
	metrics       Metrics
	timeProvider  TimeProvider
	defaultMobile string
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	leadRepo LeadRepository,
	builder QuoteBuilder,
	txManager TransactionManager,
	scheduler ReminderScheduler,
	dispatcher ReminderDispatcher,
	metrics Metrics,
	timeProvider TimeProvider,
	defaultMobile string,
	logger Logger,
) *UseCase {
	return &UseCase{
		leadRepo:      leadRepo,
		builder:       builder,
		txManager:     txManager,
		scheduler:     scheduler,
		dispatcher:    dispatcher,
		metrics:       metrics,
		timeProvider:  timeProvider,
		defaultMobile: defaultMobile,
		logger:        logger,
	}
}

// Execute добавляет предложение к существующему лиду (тот же мобильный и дата заезда)
// или создает новый лид в статусе open с напоминанием
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveQuoteAsLead: quote id=%s, mobile=%s", req.Quote.ID, req.Mobile)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveQuoteAsLead: validation failed: %v", err)
		return nil, err
	}

	name := strings.TrimSpace(req.CustomerName)

	// 2. Расчет и текст клиента не принимаются: предложение пересобирается
	quote, err := uc.builder.Rebuild(ctx, name, req.Quote)
	if err != nil {
		uc.logger.Warn("SaveQuoteAsLead: quote id=%s rejected: %v", req.Quote.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	mobile := strings.TrimSpace(req.Mobile)
	if mobile == "" {
		mobile = uc.defaultMobile
	}
	checkIn := domain.DateOnly(quote.Configuration.Dates.CheckIn)

	var (
		result  *domain.Lead
		created bool
	)

	// 3. Поиск и изменение лида в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.leadRepo.GetByMobileAndCheckIn(txCtx, mobile, checkIn)
		if err != nil && !errors.Is(err, leadRepo.ErrLeadNotFound) {
			uc.logger.Error("SaveQuoteAsLead: failed to look up lead mobile=%s: %v", mobile, err)
			return fmt.Errorf("%w: failed to look up lead: %v", ErrInternal, err)
		}

		// 3.1. Лид уже есть: добавляем вариант предложения, статус не меняется
		if existing != nil {
			if hasQuote(existing, quote.ID) {
				uc.logger.Warn("SaveQuoteAsLead: quote id=%s already saved in lead id=%d", quote.ID, existing.ID)
				return ErrQuoteAlreadySaved
			}

			existing.QuoteVariations = append(existing.QuoteVariations, *quote)
			if !existing.Status.IsTerminal() {
				existing.ReminderAt = uc.scheduler.NextReminder(domain.LeadStatusOpen)
			}

			if err := uc.leadRepo.Update(txCtx, existing); err != nil {
				uc.logger.Error("SaveQuoteAsLead: failed to update lead id=%d: %v", existing.ID, err)
				return fmt.Errorf("%w: failed to update lead: %v", ErrInternal, err)
			}

			uc.logger.Info("SaveQuoteAsLead: quote appended to lead id=%d, variations=%d",
				existing.ID, len(existing.QuoteVariations))
			result = existing
			return nil
		}

		// 3.2. Новый лид
		lead := &domain.Lead{
			Name:            name,
			Mobile:          mobile,
			CheckInDate:     checkIn,
			CheckOutDate:    domain.DateOnly(quote.Configuration.Dates.CheckOut),
			Status:          domain.LeadStatusOpen,
			QuoteVariations: []domain.Quote{*quote},
			ReminderAt:      uc.scheduler.NextReminder(domain.LeadStatusOpen),
			Notes:           strings.Join(req.Preferences, ", "),
		}

		newLead, err := uc.leadRepo.Create(txCtx, lead)
		if err != nil {
			uc.logger.Error("SaveQuoteAsLead: failed to create lead: %v", err)
			return fmt.Errorf("%w: failed to create lead: %v", ErrInternal, err)
		}

		uc.logger.Info("SaveQuoteAsLead: created lead id=%d", newLead.ID)
		result = newLead
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. После коммита: метрики и очередь напоминаний
	if created {
		uc.metrics.ObserveStatusChange(string(domain.LeadStatusOpen))
	}
	if result.ReminderAt != nil {
		if err := uc.dispatcher.Schedule(ctx, result.ID, *result.ReminderAt); err != nil {
			uc.logger.Error("SaveQuoteAsLead: failed to enqueue reminder for lead id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		Created: created,
		Lead:    models.FromDomainLead(result, uc.timeProvider.Now()),
	}, nil
}
