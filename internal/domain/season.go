package domain

import "time"

// Season ценовой сезон, определяемый месяцем
type Season string

const (
	SeasonPeak    Season = "peak"
	SeasonHigh    Season = "high"
	SeasonLow     Season = "low"
	SeasonRegular Season = "regular"
)

// Seasons все сезоны
var Seasons = []Season{SeasonPeak, SeasonHigh, SeasonLow, SeasonRegular}

// ResolveSeason определяет сезон по месяцу даты:
// 12-2 peak, 3-5 high, 6-9 low, 10-11 regular
func ResolveSeason(date time.Time) Season {
	switch m := date.Month(); {
	case m == time.December || m <= time.February:
		return SeasonPeak
	case m <= time.May:
		return SeasonHigh
	case m <= time.September:
		return SeasonLow
	default:
		return SeasonRegular
	}
}
