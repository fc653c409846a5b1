package preview_quote

import (
	"github.com/resortdesk/quote-service/internal/domain"
	generateQuote "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
)

// PreviewResponse HTTP response model
type PreviewResponse struct {
	Nights    int                   `json:"nights"`
	Complete  bool                  `json:"complete"`
	Breakdown domain.QuoteBreakdown `json:"breakdown"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateQuote.PreviewResponse) *PreviewResponse {
	return &PreviewResponse{
		Nights:    resp.Nights,
		Complete:  resp.Complete,
		Breakdown: resp.Breakdown,
	}
}
