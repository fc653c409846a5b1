package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
)

// TextDateFormat формат дат в текстах для гостя: 20 Dec 2025
const TextDateFormat = "02 Jan 2006"

// Template реквизиты объекта для текстов предложений и подтверждений
type Template struct {
	PropertyName   string
	ContactPhone   string
	QuoteValidDays int
}

// DefaultTemplate используется, если в конфигурации реквизиты не заданы
var DefaultTemplate = Template{
	PropertyName:   "Grand Resort Mahabaleshwar",
	ContactPhone:   "+91-XXXXXXXXXX",
	QuoteValidDays: 7,
}

var roomTypeLabels = map[domain.RoomType]string{
	domain.RoomTypeDeluxe:      "Deluxe",
	domain.RoomTypeSuperDeluxe: "Super Deluxe",
	domain.RoomTypeSuite:       "Suite",
}

// RoomTypeLabel название типа номера для гостя
func RoomTypeLabel(t domain.RoomType) string {
	if label, ok := roomTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// RenderQuoteText формирует текст предложения для отправки гостю
func (t Template) RenderQuoteText(cfg domain.QuoteConfiguration, b domain.QuoteBreakdown, customerName string) string {
	if strings.TrimSpace(customerName) == "" {
		customerName = domain.DefaultCustomerName
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Dear %s,\n\n", customerName)
	fmt.Fprintf(&sb, "Thank you for your interest in %s.\n\n", t.PropertyName)

	sb.WriteString("QUOTE DETAILS:\n")
	fmt.Fprintf(&sb, "Check-in: %s\n", formatTextDate(cfg.Dates.CheckIn))
	fmt.Fprintf(&sb, "Check-out: %s\n", formatTextDate(cfg.Dates.CheckOut))
	fmt.Fprintf(&sb, "Nights: %d\n\n", cfg.Dates.Nights())

	sb.WriteString("ACCOMMODATION:\n")
	for i, room := range cfg.Rooms {
		fmt.Fprintf(&sb, "Room %d: %s (%s)\n", i+1, RoomTypeLabel(room.Type), acLabel(room.WithAC))
		sb.WriteString(occupancyLine(room))
		sb.WriteString("\n")
	}

	if len(cfg.MealPlans) > 0 {
		plans := make([]string, len(cfg.MealPlans))
		for i, p := range cfg.MealPlans {
			plans[i] = string(p)
		}
		fmt.Fprintf(&sb, "\nMEAL PLANS: %s\n", strings.Join(plans, ", "))
	}

	sb.WriteString("\nPRICING:\n")
	fmt.Fprintf(&sb, "Subtotal: %s\n", money(b.Subtotal))
	if b.MealPlanTotal > 0 {
		fmt.Fprintf(&sb, "Meal Plans: %s\n", money(b.MealPlanTotal))
	}
	if b.Discount != 0 {
		sign := "-"
		amount := b.Discount
		if b.Discount < 0 {
			sign = "+"
			amount = -b.Discount
		}
		fmt.Fprintf(&sb, "Discount: %s%s\n", sign, money(amount))
	}
	fmt.Fprintf(&sb, "GST (%s%%): %s\n", FormatPercent(b.GSTRate), money(b.GSTAmount))
	fmt.Fprintf(&sb, "TOTAL: %s\n\n", money(b.Total))

	fmt.Fprintf(&sb, "This quote is valid for %d days. Terms and conditions apply.\n\n", t.validDays())
	fmt.Fprintf(&sb, "For bookings, contact: %s\n", t.ContactPhone)
	sb.WriteString(t.PropertyName)

	return sb.String()
}

// RenderQuoteText формирует текст по шаблону по умолчанию
func RenderQuoteText(cfg domain.QuoteConfiguration, b domain.QuoteBreakdown, customerName string) string {
	return DefaultTemplate.RenderQuoteText(cfg, b, customerName)
}

func (t Template) validDays() int {
	if t.QuoteValidDays <= 0 {
		return DefaultTemplate.QuoteValidDays
	}
	return t.QuoteValidDays
}

func occupancyLine(room domain.RoomConfiguration) string {
	line := fmt.Sprintf("Occupancy: %d Adults", room.Adults)
	if room.Children > 0 {
		line += fmt.Sprintf(", %d Children", room.Children)
	}
	if room.Infants > 0 {
		line += fmt.Sprintf(", %d Infants", room.Infants)
	}
	if room.Pets > 0 {
		line += fmt.Sprintf(", %d Pets", room.Pets)
	}
	return line
}

func acLabel(withAC bool) string {
	if withAC {
		return "AC"
	}
	return "Non-AC"
}

func money(v float64) string {
	return CurrencySymbol + FormatAmount(v)
}

func formatTextDate(d time.Time) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format(TextDateFormat)
}
