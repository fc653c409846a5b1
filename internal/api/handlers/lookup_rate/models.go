package lookup_rate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/service/rates/models"
)

// ParseQuery разбирает date, roomType и withAC (по умолчанию true)
func ParseQuery(q url.Values) (*models.LookupRequest, error) {
	date, err := domain.ParseDate(q.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	withAC := true
	if raw := q.Get("withAC"); raw != "" {
		withAC, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("withAC: %w", err)
		}
	}

	return &models.LookupRequest{
		Date:     date,
		RoomType: q.Get("roomType"),
		WithAC:   withAC,
	}, nil
}
