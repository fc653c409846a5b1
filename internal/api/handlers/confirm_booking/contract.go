package confirm_booking

import (
	"context"

	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

type LeadsService interface {
	ConfirmBooking(ctx context.Context, id int64, req *models.ConfirmBookingRequest) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
