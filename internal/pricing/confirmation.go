package pricing

import (
	"fmt"
	"strings"

	"github.com/resortdesk/quote-service/internal/domain"
)

// RenderConfirmationText формирует подтверждение бронирования для выигранного лида.
// advance - полученная предоплата; nil, если предоплаты не было.
func (t Template) RenderConfirmationText(lead *domain.Lead, quote *domain.Quote, advance *float64) string {
	name := strings.TrimSpace(lead.Name)
	if name == "" {
		name = domain.DefaultCustomerName
	}

	cfg := quote.Configuration
	var sb strings.Builder

	fmt.Fprintf(&sb, "Dear %s,\n\n", name)
	fmt.Fprintf(&sb, "Your booking at %s is CONFIRMED.\n\n", t.PropertyName)

	sb.WriteString("BOOKING DETAILS:\n")
	fmt.Fprintf(&sb, "Check-in: %s\n", formatTextDate(cfg.Dates.CheckIn))
	fmt.Fprintf(&sb, "Check-out: %s\n", formatTextDate(cfg.Dates.CheckOut))
	fmt.Fprintf(&sb, "Nights: %d\n", cfg.Dates.Nights())
	fmt.Fprintf(&sb, "Rooms: %d\n", len(cfg.Rooms))
	for i, room := range cfg.Rooms {
		fmt.Fprintf(&sb, "  %d. %s (%s)\n", i+1, RoomTypeLabel(room.Type), acLabel(room.WithAC))
	}

	fmt.Fprintf(&sb, "\nTotal Amount: %s\n", money(quote.Breakdown.Total))
	if advance != nil && *advance > 0 {
		fmt.Fprintf(&sb, "Advance Received: %s\n", money(*advance))
		fmt.Fprintf(&sb, "Balance Due: %s\n", money(quote.Breakdown.Total-*advance))
	}

	sb.WriteString("\nWe look forward to welcoming you.\n\n")
	fmt.Fprintf(&sb, "For assistance, contact: %s\n", t.ContactPhone)
	sb.WriteString(t.PropertyName)

	return sb.String()
}
