package save_quote_as_lead

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/resortdesk/quote-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Quote.ID == "" {
		return fmt.Errorf("%w: quote id is required", ErrInvalidInput)
	}

	if !req.Quote.Configuration.Dates.IsComplete() {
		return fmt.Errorf("%w: quote has no stay dates", ErrInvalidInput)
	}

	if len(req.Quote.Configuration.Rooms) == 0 {
		return fmt.Errorf("%w: quote has no rooms", ErrInvalidInput)
	}

	return nil
}

func hasQuote(lead *domain.Lead, quoteID string) bool {
	for _, q := range lead.QuoteVariations {
		if q.ID == quoteID {
			return true
		}
	}
	return false
}
