package generate_quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/resortdesk/quote-service/internal/domain"
	generateQuote "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
	"github.com/resortdesk/quote-service/pkg/logger"
)

type MockGenerateQuoteUseCase struct {
	mock.Mock
}

func (m *MockGenerateQuoteUseCase) Execute(ctx context.Context, req *generateQuote.Request) (*generateQuote.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generateQuote.Response), args.Error(1)
}

const validBody = `{
	"customerName": "Anita",
	"rooms": [{"id": "room-1", "type": "deluxe", "adults": 2, "withAC": true}],
	"dates": {"checkIn": "2025-12-20", "checkOut": "2025-12-22"},
	"mealPlans": ["CP"],
	"overallDiscount": 5
}`

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := new(MockGenerateQuoteUseCase)
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "error"))

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *generateQuote.Request) bool {
		return req.CustomerName == "Anita" &&
			len(req.Rooms) == 1 && req.Rooms[0].Type == domain.RoomTypeDeluxe &&
			domain.FormatDate(req.Dates.CheckIn) == "2025-12-20" &&
			domain.FormatDate(req.Dates.CheckOut) == "2025-12-22" &&
			req.OverallDiscount == 5 &&
			len(req.MealPlans) == 1 && req.MealPlans[0] == domain.MealPlanCP
	})).Return(&generateQuote.Response{
		CustomerName: "Anita",
		Quote: domain.Quote{
			ID:        "2f1b7c0e-0000-4000-8000-000000000001",
			Breakdown: domain.QuoteBreakdown{Total: 11200, Items: []domain.LineItem{}},
		},
	}, nil)

	rec := serve(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Anita", resp.CustomerName)
	assert.Equal(t, 11200.0, resp.Quote.Breakdown.Total)
	uc.AssertExpectations(t)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		useCaseErr     error
		expectedStatus int
	}{
		{name: "malformed json", body: `{"rooms": [`, expectedStatus: http.StatusBadRequest},
		{name: "bad date format", body: `{"rooms": [], "dates": {"checkIn": "20/12/2025", "checkOut": ""}}`, expectedStatus: http.StatusBadRequest},
		{name: "invalid input", body: validBody, useCaseErr: generateQuote.ErrInvalidInput, expectedStatus: http.StatusBadRequest},
		{name: "invalid range", body: validBody, useCaseErr: generateQuote.ErrInvalidDateRange, expectedStatus: http.StatusUnprocessableEntity},
		{name: "check-in in past", body: validBody, useCaseErr: generateQuote.ErrCheckInInPast, expectedStatus: http.StatusUnprocessableEntity},
		{name: "unexpected", body: validBody, useCaseErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockGenerateQuoteUseCase)
			if tt.useCaseErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.useCaseErr)
			}
			h := NewHandler(uc, logger.NewWithWriter(io.Discard, "error"))

			rec := serve(h, tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body["error"], "boom")
		})
	}
}

func TestHandler_Handle_InvalidInputHidesDetails(t *testing.T) {
	uc := new(MockGenerateQuoteUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: room 1 has unknown type %q", generateQuote.ErrInvalidInput, "penthouse"))
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "error"))

	rec := serve(h, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgInvalidQuote, body["error"])
	assert.NotContains(t, body["error"], "generate_quote:")
}
