package get_confirmed_bookings

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/resortdesk/quote-service/internal/service/leads/models"
	"github.com/resortdesk/quote-service/pkg/logger"
)

type MockLeadsService struct {
	mock.Mock
}

func (m *MockLeadsService) ConfirmedBookings(ctx context.Context) (*models.ConfirmedBookingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConfirmedBookingsResponse), args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	svc := new(MockLeadsService)
	svc.On("ConfirmedBookings", mock.Anything).Return(&models.ConfirmedBookingsResponse{
		Bookings: []*models.ConfirmedBooking{{Lead: &models.LeadResponse{ID: 1}, Total: 22400}},
		Summary:  models.BookingsSummary{Count: 1, TotalRevenue: 22400, AverageValue: 22400},
	}, nil).Once()
	svc.On("ConfirmedBookings", mock.Anything).Return(nil, errors.New("db down")).Once()

	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "error"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/confirmed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalRevenue":22400`)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/confirmed", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")

	svc.AssertExpectations(t)
}
