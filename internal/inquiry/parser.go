package inquiry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/pkg/clock"
)

// Тексты предпочтений гостя
const (
	PreferenceAC         = "AC preferred"
	PreferenceDeluxe     = "Deluxe room"
	PreferenceSuite      = "Suite preferred"
	PreferenceGardenView = "Garden view"
)

// maxGuests ограничивает распознанное число гостей, чтобы не синтезировать
// больше номеров, чем допускает одно предложение
const maxGuests = domain.MaxRoomsPerQuote * domain.MaxGuestsPerRoom

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`),
		regexp.MustCompile(`(\d{1,2})\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`),
		regexp.MustCompile(`(check.?in|arrival)[\s:]*(\d{1,2})[/\-](\d{1,2})`),
		regexp.MustCompile(`(check.?out|departure)[\s:]*(\d{1,2})[/\-](\d{1,2})`),
	}

	adultPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*adults?`),
		regexp.MustCompile(`(\d+)\s*pax`),
		regexp.MustCompile(`(\d+)\s*persons?`),
		regexp.MustCompile(`(\d+)\s*people`),
	}

	childPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*child(?:ren)?`),
		regexp.MustCompile(`(\d+)\s*kids?`),
	}
)

// DateRange даты из запроса в формате YYYY-MM-DD; пустые строки, если даты не распознаны
type DateRange struct {
	CheckIn  string
	CheckOut string
}

// GuestCount распознанное количество гостей
type GuestCount struct {
	Adults   int
	Children int
}

// ParsedInquiry частичная конфигурация предложения, извлеченная из текста
type ParsedInquiry struct {
	Dates       DateRange
	Rooms       []domain.RoomConfiguration
	GuestCount  GuestCount
	Preferences []string
	// DateTokens найденные в тексте фрагменты, похожие на даты.
	// В расчет дат не используются.
	DateTokens []string
}

// Parser эвристический разборщик текстовых запросов гостей
type Parser struct {
	clock clock.Clock
}

// NewParser создает разборщик; nil clock означает системное время
func NewParser(c clock.Clock) *Parser {
	if c == nil {
		c = clock.Real{}
	}
	return &Parser{clock: c}
}

// ParseInquiry извлекает даты, количество гостей, номера и предпочтения.
// Никогда не возвращает ошибку: для нераспознанных полей используются значения по умолчанию.
func (p *Parser) ParseInquiry(text string) ParsedInquiry {
	lower := strings.ToLower(text)

	parsed := ParsedInquiry{
		Preferences: []string{},
		DateTokens:  findDateTokens(lower),
	}

	// Найденные значения дат не разбираются: при двух и более совпадениях
	// подставляется заезд сегодня и проживание на DefaultStayNights ночей
	if len(parsed.DateTokens) >= 2 {
		today := clock.Today(p.clock)
		parsed.Dates = DateRange{
			CheckIn:  domain.FormatDate(today),
			CheckOut: domain.FormatDate(today.AddDate(0, 0, domain.DefaultStayNights)),
		}
	}

	parsed.GuestCount.Adults = maxCapture(lower, adultPatterns)
	parsed.GuestCount.Children = maxCapture(lower, childPatterns)
	if parsed.GuestCount.Adults == 0 {
		parsed.GuestCount.Adults = domain.DefaultAdults
	}
	// общий лимит: взрослые в приоритете, дети урезаются до остатка
	if parsed.GuestCount.Adults+parsed.GuestCount.Children > maxGuests {
		parsed.GuestCount.Children = maxGuests - parsed.GuestCount.Adults
	}

	parsed.Preferences = preferences(lower)
	parsed.Rooms = synthesizeRooms(parsed.GuestCount)

	return parsed
}

func findDateTokens(text string) []string {
	var tokens []string
	for _, pattern := range datePatterns {
		tokens = append(tokens, pattern.FindAllString(text, -1)...)
	}
	return tokens
}

// maxCapture максимум по всем числовым захватам всех шаблонов
func maxCapture(text string, patterns []*regexp.Regexp) int {
	result := 0
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if n > result {
				result = n
			}
		}
	}
	if result > maxGuests {
		result = maxGuests
	}
	return result
}

func preferences(text string) []string {
	prefs := []string{}
	if strings.Contains(text, "ac") || strings.Contains(text, "air con") {
		prefs = append(prefs, PreferenceAC)
	}
	if strings.Contains(text, "deluxe") {
		prefs = append(prefs, PreferenceDeluxe)
	}
	if strings.Contains(text, "suite") {
		prefs = append(prefs, PreferenceSuite)
	}
	if strings.Contains(text, "garden") || strings.Contains(text, "view") {
		prefs = append(prefs, PreferenceGardenView)
	}
	return prefs
}

// synthesizeRooms: по одному номеру на каждые MaxGuestsPerRoom гостей (минимум один),
// взрослые по MaxAdultsPerRoom последовательно, все дети в первом номере
func synthesizeRooms(guests GuestCount) []domain.RoomConfiguration {
	total := guests.Adults + guests.Children
	count := (total + domain.MaxGuestsPerRoom - 1) / domain.MaxGuestsPerRoom
	count = min(max(count, 1), domain.MaxRoomsPerQuote)

	rooms := make([]domain.RoomConfiguration, 0, count)
	for i := 0; i < count; i++ {
		adults := guests.Adults - i*domain.MaxAdultsPerRoom
		adults = min(domain.MaxAdultsPerRoom, max(0, adults))

		children := 0
		if i == 0 {
			children = guests.Children
		}

		rooms = append(rooms, domain.RoomConfiguration{
			ID:       fmt.Sprintf("room-%d", i+1),
			Type:     domain.RoomTypeDeluxe,
			Adults:   adults,
			Children: children,
			WithAC:   true,
		})
	}
	return rooms
}
