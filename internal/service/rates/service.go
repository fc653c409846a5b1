package rates

import (
	"errors"
	"fmt"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/infra/ratesource"
	"github.com/resortdesk/quote-service/internal/service/rates/models"
)

// Service сервис тарифов: чтение и замена таблицы, сезон и ставка на дату
type Service struct {
	source RateSource
	logger Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(source RateSource, logger Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// GetRates возвращает текущую тарифную таблицу
func (s *Service) GetRates() (*domain.RateTable, error) {
	table := s.source.Current()
	if table == nil {
		s.logger.Error("GetRates: rate table is not loaded")
		return nil, ErrRatesUnavailable
	}
	return table, nil
}

// UpdateRates целиком заменяет тарифную таблицу
func (s *Service) UpdateRates(table *domain.RateTable) (*domain.RateTable, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: table is empty", ErrInvalidRateTable)
	}

	s.logger.Info("UpdateRates: replacing rate table, seasons=%d, meal_plans=%d", len(table.Seasons), len(table.MealPlans))

	if err := s.source.Replace(table); err != nil {
		if errors.Is(err, ratesource.ErrInvalidTable) {
			s.logger.Warn("UpdateRates: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRateTable, err)
		}
		s.logger.Error("UpdateRates: failed to replace table: %v", err)
		return nil, fmt.Errorf("%w: UpdateRates - %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRates: rate table replaced, gst_threshold=%.2f", table.GSTThreshold)
	return s.source.Current(), nil
}

// GetSeason определяет сезон для даты
func (s *Service) GetSeason(date string) (*models.SeasonResponse, error) {
	parsed, err := domain.ParseDate(date)
	if err != nil || parsed.IsZero() {
		s.logger.Warn("GetSeason: invalid date=%q", date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	return &models.SeasonResponse{
		Date:   domain.FormatDate(parsed),
		Season: string(domain.ResolveSeason(parsed)),
	}, nil
}

// LookupRate возвращает ставку номера за ночь на дату заезда.
// Отсутствие ставки в таблице не ошибка: Rate=0, Found=false.
func (s *Service) LookupRate(req *models.LookupRequest) (*models.LookupResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	roomType := domain.RoomType(req.RoomType)
	if !roomType.IsValid() {
		s.logger.Warn("LookupRate: unknown room type=%q", req.RoomType)
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	table, err := s.GetRates()
	if err != nil {
		return nil, err
	}

	season := domain.ResolveSeason(req.Date)
	rate, found := table.RoomRate(season, roomType, req.WithAC)
	if !found {
		s.logger.Warn("LookupRate: no rate for season=%s, room_type=%s", season, roomType)
	}

	return &models.LookupResponse{
		Date:     domain.FormatDate(req.Date),
		Season:   string(season),
		RoomType: string(roomType),
		WithAC:   req.WithAC,
		Rate:     rate,
		Found:    found,
	}, nil
}
