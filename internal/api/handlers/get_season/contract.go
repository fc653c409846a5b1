package get_season

import "github.com/resortdesk/quote-service/internal/service/rates/models"

type RatesService interface {
	GetSeason(date string) (*models.SeasonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
