package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Nights(t *testing.T) {
	tests := []struct {
		name     string
		dates    DateRange
		expected int
	}{
		{"two nights", DateRange{date(2025, 12, 20), date(2025, 12, 22)}, 2},
		{"same day", DateRange{date(2025, 12, 20), date(2025, 12, 20)}, 0},
		{"reversed", DateRange{date(2025, 12, 22), date(2025, 12, 20)}, -2},
		{"partial day rounds up", DateRange{date(2025, 12, 20), date(2025, 12, 21).Add(2 * time.Hour)}, 2},
		{"missing checkout", DateRange{CheckIn: date(2025, 12, 20)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dates.Nights())
		})
	}
}

func TestDateRange_IsValidFor(t *testing.T) {
	today := time.Date(2025, 10, 16, 14, 30, 0, 0, time.UTC)

	assert.True(t, DateRange{date(2025, 10, 16), date(2025, 10, 17)}.IsValidFor(today))
	assert.False(t, DateRange{date(2025, 10, 15), date(2025, 10, 17)}.IsValidFor(today))
	assert.False(t, DateRange{date(2025, 10, 17), date(2025, 10, 17)}.IsValidFor(today))
	assert.False(t, DateRange{CheckIn: date(2025, 10, 17)}.IsValidFor(today))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2025-12-20")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 12, 20), d)
	assert.Equal(t, "2025-12-20", FormatDate(d))

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
	assert.Equal(t, "", FormatDate(empty))

	_, err = ParseDate("20/12/2025")
	assert.Error(t, err)
}

func TestDateRange_JSON(t *testing.T) {
	in := DateRange{
		CheckIn:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2025-12-20","checkOut":"2025-12-22"}`, string(data))

	var out DateRange
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.CheckIn.Equal(in.CheckIn))
	assert.Equal(t, 2, out.Nights())

	var empty DateRange
	require.NoError(t, json.Unmarshal([]byte(`{"checkIn":"","checkOut":""}`), &empty))
	assert.False(t, empty.IsComplete())

	assert.Error(t, json.Unmarshal([]byte(`{"checkIn":"20/12/2025"}`), &empty))
}
