package preview_quote

import (
	"context"

	generateQuote "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
)

type PreviewQuoteUseCase interface {
	Preview(ctx context.Context, req *generateQuote.Request) *generateQuote.PreviewResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
