package generate_quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/pricing"
	"github.com/resortdesk/quote-service/pkg/clock"
)

// UseCase use case для генерации предложения
type UseCase struct {
	rates        RateSource
	renderer     QuoteRenderer
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rates RateSource,
	renderer QuoteRenderer,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		rates:        rates,
		renderer:     renderer,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute валидирует запрос, рассчитывает стоимость и формирует предложение
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateQuote: rooms=%d, checkIn=%s, checkOut=%s, mealPlans=%v, discount=%.2f",
		len(req.Rooms), domain.FormatDate(req.Dates.CheckIn), domain.FormatDate(req.Dates.CheckOut),
		req.MealPlans, req.OverallDiscount)

	quote, customerName, err := uc.build("GenerateQuote", req, uuid.NewString())
	if err != nil {
		return nil, err
	}

	roomFallbacks, mealFallbacks := quote.Breakdown.CountFallbacks()
	uc.metrics.ObserveQuote(string(quote.Breakdown.Season), quote.Breakdown.Total, roomFallbacks, mealFallbacks)

	uc.logger.Info("GenerateQuote: quote id=%s generated, nights=%d, season=%s, total=%.2f",
		quote.ID, quote.Configuration.Nights, quote.Breakdown.Season, quote.Breakdown.Total)

	return &Response{CustomerName: customerName, Quote: *quote}, nil
}

// Rebuild заново собирает присланное клиентом предложение перед сохранением.
// От клиента берутся только ID и конфигурация: расчет и текст пересчитываются
// по текущей тарифной таблице, подтверждение бронирования не принимается.
func (uc *UseCase) Rebuild(_ context.Context, customerName string, submitted domain.Quote) (*domain.Quote, error) {
	uc.logger.Info("RebuildQuote: quote id=%s, rooms=%d", submitted.ID, len(submitted.Configuration.Rooms))

	if _, err := uuid.Parse(submitted.ID); err != nil {
		uc.logger.Warn("RebuildQuote: invalid quote id=%q", submitted.ID)
		return nil, fmt.Errorf("%w: quote id must be a UUID", ErrInvalidInput)
	}

	if submitted.BookingConfirmation != nil {
		uc.logger.Warn("RebuildQuote: quote id=%s submitted with a booking confirmation", submitted.ID)
		return nil, fmt.Errorf("%w: booking confirmation cannot be submitted with a quote", ErrInvalidInput)
	}

	cfg := submitted.Configuration
	quote, _, err := uc.build("RebuildQuote", &Request{
		CustomerName:    customerName,
		Rooms:           cfg.Rooms,
		Dates:           cfg.Dates,
		MealPlans:       cfg.MealPlans,
		ClientType:      cfg.ClientType,
		OverallDiscount: cfg.OverallDiscount,
	}, submitted.ID)
	if err != nil {
		return nil, err
	}

	if quote.Breakdown.Total != submitted.Breakdown.Total {
		uc.logger.Warn("RebuildQuote: quote id=%s repriced, submitted total=%.2f, actual total=%.2f",
			quote.ID, submitted.Breakdown.Total, quote.Breakdown.Total)
	}

	return quote, nil
}

// build валидирует запрос и собирает предложение с заданным ID
func (uc *UseCase) build(op string, req *Request, id string) (*domain.Quote, string, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("%s: validation failed: %v", op, err)
		return nil, "", err
	}

	now := uc.timeProvider.Now()

	// 2. Даты должны быть пригодны для бронирования
	if err := validateDates(req.Dates, clock.Today(uc.timeProvider)); err != nil {
		uc.logger.Warn("%s: date validation failed: %v", op, err)
		return nil, "", err
	}

	clientType := req.ClientType
	if clientType == "" {
		clientType = domain.DefaultClientType
	}

	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		customerName = domain.DefaultCustomerName
	}

	configuration := domain.QuoteConfiguration{
		Rooms:           normalizeRooms(req.Rooms),
		Dates:           req.Dates,
		MealPlans:       append([]domain.MealPlanCode(nil), req.MealPlans...),
		ClientType:      clientType,
		OverallDiscount: req.OverallDiscount,
		Nights:          req.Dates.Nights(),
	}

	// 3. Расчет стоимости
	breakdown := pricing.ComputeTotals(
		configuration.Rooms,
		configuration.Dates,
		uc.rates.Current(),
		configuration.MealPlans,
		configuration.OverallDiscount,
	)

	if !breakdown.IsComplete() {
		roomFallbacks, mealFallbacks := breakdown.CountFallbacks()
		uc.logger.Warn("%s: missing rates priced as 0, rooms=%d, mealPlans=%d, season=%s",
			op, roomFallbacks, mealFallbacks, breakdown.Season)
	}

	// 4. Текст для гостя
	return &domain.Quote{
		ID:            id,
		CreatedAt:     now.UTC(),
		Configuration: configuration,
		Breakdown:     breakdown,
		GeneratedText: uc.renderer.RenderQuoteText(configuration, breakdown, customerName),
	}, customerName, nil
}

// Preview рассчитывает стоимость без валидации. Никогда не отклоняет запрос:
// неполные данные дают нулевой расчет.
func (uc *UseCase) Preview(_ context.Context, req *Request) *PreviewResponse {
	breakdown := pricing.ComputeTotals(
		req.Rooms,
		req.Dates,
		uc.rates.Current(),
		req.MealPlans,
		req.OverallDiscount,
	)

	return &PreviewResponse{
		Nights:    req.Dates.Nights(),
		Complete:  breakdown.IsComplete(),
		Breakdown: breakdown,
	}
}
