package update_lead_status

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func (m *MockLeadsService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.LeadResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeadResponse), args.Error(1)
}

func patch(svc LeadsService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/leads/{leadId}/status", NewHandler(svc, logger.NewWithWriter(io.Discard, "error")).Handle).
		Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body)))
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	reminder := time.Date(2025, 11, 21, 10, 0, 0, 0, time.UTC)
	svc := new(MockLeadsService)
	svc.On("UpdateStatus", mock.Anything, int64(5), &models.UpdateStatusRequest{Status: "contacted"}).
		Return(&models.LeadResponse{ID: 5, Status: "contacted", ReminderAt: &reminder}, nil)

	rec := patch(svc, "/api/v1/leads/5/status", `{"status": "contacted"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reminderAt":"2025-11-21T10:00:00Z"`)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "invalid id", path: "/api/v1/leads/x/status", body: `{"status":"won"}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid body", path: "/api/v1/leads/5/status", body: `{"state":"won"}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid status", path: "/api/v1/leads/5/status", body: `{"status":"pending"}`, serviceErr: leads.ErrInvalidStatus, expectedStatus: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/leads/5/status", body: `{"status":"won"}`, serviceErr: leads.ErrLeadNotFound, expectedStatus: http.StatusNotFound},
		{name: "internal", path: "/api/v1/leads/5/status", body: `{"status":"won"}`, serviceErr: leads.ErrInternal, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLeadsService)
			if tt.serviceErr != nil {
				svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := patch(svc, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
