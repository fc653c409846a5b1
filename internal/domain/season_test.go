package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeason_AllMonths(t *testing.T) {
	expected := map[time.Month]Season{
		time.January:   SeasonPeak,
		time.February:  SeasonPeak,
		time.March:     SeasonHigh,
		time.April:     SeasonHigh,
		time.May:       SeasonHigh,
		time.June:      SeasonLow,
		time.July:      SeasonLow,
		time.August:    SeasonLow,
		time.September: SeasonLow,
		time.October:   SeasonRegular,
		time.November:  SeasonRegular,
		time.December:  SeasonPeak,
	}

	for _, year := range []int{1999, 2024, 2025, 2100} {
		for month, season := range expected {
			date := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, season, ResolveSeason(date), "year=%d month=%s", year, month)
		}
	}
}

func TestResolveSeason_MonthBoundaries(t *testing.T) {
	assert.Equal(t, SeasonPeak, ResolveSeason(time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, SeasonHigh, ResolveSeason(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, SeasonRegular, ResolveSeason(time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, SeasonPeak, ResolveSeason(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}
