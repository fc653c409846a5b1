package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/pkg/clock"
)

func TestScheduler_NextReminder(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 12, 1, 10, 0, 0, 0, ist)
	s := NewScheduler(clock.Fixed{T: now})

	tests := []struct {
		status domain.LeadStatus
		offset time.Duration
	}{
		{status: domain.LeadStatusOpen, offset: 2 * time.Hour},
		{status: domain.LeadStatusContacted, offset: 24 * time.Hour},
		{status: domain.LeadStatusNegotiation, offset: 6 * time.Hour},
		{status: domain.LeadStatusNurturing, offset: 72 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			at := s.NextReminder(tt.status)
			require.NotNil(t, at)
			assert.True(t, at.Equal(now.Add(tt.offset)))
			assert.Equal(t, time.UTC, at.Location())
		})
	}
}

func TestScheduler_NoReminderForClosedLeads(t *testing.T) {
	s := NewScheduler(clock.Fixed{T: time.Now()})

	for _, status := range []domain.LeadStatus{
		domain.LeadStatusWon,
		domain.LeadStatusLostPrice,
		domain.LeadStatusLostCompetitor,
		domain.LeadStatusLostTiming,
		domain.LeadStatusLostOther,
		domain.LeadStatus("unknown"),
	} {
		assert.Nil(t, s.NextReminder(status), status)
	}
}

func TestScheduler_RealClock(t *testing.T) {
	s := NewScheduler(nil)

	before := time.Now()
	at := s.NextReminder(domain.LeadStatusOpen)
	after := time.Now()

	require.NotNil(t, at)
	assert.False(t, at.Before(before.Add(2*time.Hour)))
	assert.False(t, at.After(after.Add(2*time.Hour)))
}

func TestOffset(t *testing.T) {
	offset, ok := Offset(domain.LeadStatusNurturing)
	assert.True(t, ok)
	assert.Equal(t, 72*time.Hour, offset)

	_, ok = Offset(domain.LeadStatusWon)
	assert.False(t, ok)
}
