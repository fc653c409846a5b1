package list_leads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/resortdesk/quote-service/internal/service/leads"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
	"github.com/resortdesk/quote-service/pkg/logger"
)

type MockLeadsService struct {
	mock.Mock
}

func (m *MockLeadsService) List(ctx context.Context, req *models.ListLeadsRequest) (*models.LeadListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeadListResponse), args.Error(1)
}

func TestHandler_Handle_PassesQuery(t *testing.T) {
	svc := new(MockLeadsService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListLeadsRequest) bool {
		return req.Status != nil && *req.Status == "negotiation" && req.Search == "anita" && req.Sort == "value"
	})).Return(&models.LeadListResponse{Leads: []*models.LeadResponse{{ID: 1}}, Total: 1}, nil)

	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "error"))
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads?status=negotiation&search=anita&sort=value", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	svc.AssertExpectations(t)
}

func TestHandler_Handle_AllStatuses(t *testing.T) {
	svc := new(MockLeadsService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListLeadsRequest) bool {
		return req.Status == nil
	})).Return(&models.LeadListResponse{Leads: []*models.LeadResponse{}}, nil)

	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "error"))
	for _, url := range []string{"/api/v1/leads", "/api/v1/leads?status=all"} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
	}{
		{err: leads.ErrInvalidStatus, expectedStatus: http.StatusBadRequest},
		{err: leads.ErrInvalidInput, expectedStatus: http.StatusBadRequest},
		{err: fmt.Errorf("%w: db", leads.ErrInternal), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := new(MockLeadsService)
			svc.On("List", mock.Anything, mock.Anything).Return(nil, tt.err)

			h := NewHandler(svc, logger.NewWithWriter(io.Discard, "error"))
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/leads?status=x", nil))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
