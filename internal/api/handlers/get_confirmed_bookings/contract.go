package get_confirmed_bookings

import (
	"context"

	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

type LeadsService interface {
	ConfirmedBookings(ctx context.Context) (*models.ConfirmedBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
