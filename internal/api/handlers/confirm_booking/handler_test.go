package confirm_booking

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/service/leads"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
	"github.com/resortdesk/quote-service/pkg/logger"
)

type MockLeadsService struct {
	mock.Mock
}

func (m *MockLeadsService) ConfirmBooking(ctx context.Context, id int64, req *models.ConfirmBookingRequest) (*models.ConfirmationResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConfirmationResponse), args.Error(1)
}

func post(svc LeadsService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/leads/{leadId}/confirmation", NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle).
		Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestHandler_Handle_WithAdvance(t *testing.T) {
	svc := new(MockLeadsService)
	svc.On("ConfirmBooking", mock.Anything, int64(2), mock.MatchedBy(func(req *models.ConfirmBookingRequest) bool {
		return req.AdvanceAmount != nil && *req.AdvanceAmount == 5000
	})).Return(&models.ConfirmationResponse{
		LeadID:       2,
		QuoteID:      "q2",
		Confirmation: domain.BookingConfirmation{ConfirmationText: "Your booking is CONFIRMED."},
	}, nil)

	rec := post(svc, "/api/v1/leads/2/confirmation", `{"advanceAmount": 5000}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quoteId":"q2"`)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_EmptyBody(t *testing.T) {
	svc := new(MockLeadsService)
	svc.On("ConfirmBooking", mock.Anything, int64(2), &models.ConfirmBookingRequest{}).
		Return(&models.ConfirmationResponse{LeadID: 2, QuoteID: "q1"}, nil)

	rec := post(svc, "/api/v1/leads/2/confirmation", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		serviceErr     error
		expectedStatus int
	}{
		{serviceErr: leads.ErrLeadNotFound, expectedStatus: http.StatusNotFound},
		{serviceErr: leads.ErrLeadNotWon, expectedStatus: http.StatusConflict},
		{serviceErr: leads.ErrNoQuotes, expectedStatus: http.StatusUnprocessableEntity},
		{serviceErr: leads.ErrInvalidInput, expectedStatus: http.StatusBadRequest},
		{serviceErr: leads.ErrInternal, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.serviceErr.Error(), func(t *testing.T) {
			svc := new(MockLeadsService)
			svc.On("ConfirmBooking", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			rec := post(svc, "/api/v1/leads/2/confirmation", `{}`)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
