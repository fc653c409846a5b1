package save_lead

import (
	"context"

	saveQuoteAsLead "github.com/resortdesk/quote-service/internal/usecase/save_quote_as_lead"
)

type SaveQuoteAsLeadUseCase interface {
	Execute(ctx context.Context, req *saveQuoteAsLead.Request) (*saveQuoteAsLead.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
