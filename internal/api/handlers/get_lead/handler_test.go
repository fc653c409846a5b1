package get_lead

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/resortdesk/quote-service/internal/service/leads"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
	"github.com/resortdesk/quote-service/pkg/logger"
)

type MockLeadsService struct {
	mock.Mock
}

func (m *MockLeadsService) GetByID(ctx context.Context, id int64) (*models.LeadResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeadResponse), args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockLeadsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "found",
			path: "/api/v1/leads/7",
			setupMock: func(m *MockLeadsService) {
				m.On("GetByID", mock.Anything, int64(7)).Return(&models.LeadResponse{ID: 7, Name: "Anita", Status: "open"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Anita"`,
		},
		{
			name: "not found",
			path: "/api/v1/leads/8",
			setupMock: func(m *MockLeadsService) {
				m.On("GetByID", mock.Anything, int64(8)).Return(nil, leads.ErrLeadNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"lead not found"`,
		},
		{
			name: "repository failure",
			path: "/api/v1/leads/9",
			setupMock: func(m *MockLeadsService) {
				m.On("GetByID", mock.Anything, int64(9)).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"internal server error"`,
		},
		{
			name:           "invalid id",
			path:           "/api/v1/leads/abc",
			setupMock:      func(*MockLeadsService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid lead ID"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLeadsService)
			tt.setupMock(svc)

			r := mux.NewRouter()
			r.HandleFunc("/api/v1/leads/{leadId}", NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
