package rates

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/infra/ratesource"
	"github.com/resortdesk/quote-service/internal/service/rates/models"
	"github.com/resortdesk/quote-service/pkg/logger"
)

func newTestService() *Service {
	table := &domain.RateTable{
		Seasons: map[domain.Season]domain.SeasonRates{
			domain.SeasonPeak: {Rates: map[domain.RoomType]domain.RoomRate{
				domain.RoomTypeDeluxe: {WithAC: 5000, WithoutAC: 4200},
			}},
		},
		GSTThreshold: 7000,
		GSTRates:     domain.GSTRates{Below: 0.12, Above: 0.18},
	}
	return NewService(ratesource.New(table), logger.NewWithWriter(io.Discard, "error"))
}

func TestService_GetSeason(t *testing.T) {
	s := newTestService()

	resp, err := s.GetSeason("2026-04-10")
	require.NoError(t, err)
	assert.Equal(t, "high", resp.Season)
	assert.Equal(t, "2026-04-10", resp.Date)

	_, err = s.GetSeason("10-04-2026")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.GetSeason("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_LookupRate(t *testing.T) {
	s := newTestService()
	dec := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)

	resp, err := s.LookupRate(&models.LookupRequest{Date: dec, RoomType: "deluxe", WithAC: false})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, 4200.0, resp.Rate)
	assert.Equal(t, "peak", resp.Season)

	resp, err = s.LookupRate(&models.LookupRequest{Date: dec, RoomType: "suite", WithAC: true})
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Equal(t, 0.0, resp.Rate)

	_, err = s.LookupRate(&models.LookupRequest{Date: dec, RoomType: "villa"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.LookupRate(&models.LookupRequest{RoomType: "deluxe"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateRates(t *testing.T) {
	s := newTestService()

	_, err := s.UpdateRates(&domain.RateTable{GSTRates: domain.GSTRates{Below: 12}})
	assert.ErrorIs(t, err, ErrInvalidRateTable)

	current, err := s.GetRates()
	require.NoError(t, err)
	assert.Equal(t, 7000.0, current.GSTThreshold)

	updated, err := s.UpdateRates(&domain.RateTable{GSTThreshold: 8000, GSTRates: domain.GSTRates{Below: 0.12, Above: 0.18}})
	require.NoError(t, err)
	assert.Equal(t, 8000.0, updated.GSTThreshold)
}

func TestService_GetRates_NotLoaded(t *testing.T) {
	s := NewService(ratesource.New(nil), logger.NewWithWriter(io.Discard, "error"))

	_, err := s.GetRates()
	assert.ErrorIs(t, err, ErrRatesUnavailable)
}
