package get_due_reminders

import (
	"context"

	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

type LeadsService interface {
	DueReminders(ctx context.Context) (*models.LeadListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
