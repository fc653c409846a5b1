package lookup_rate

import "github.com/resortdesk/quote-service/internal/service/rates/models"

type RatesService interface {
	LookupRate(req *models.LookupRequest) (*models.LookupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
