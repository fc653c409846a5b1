package generate_quote

import (
	"fmt"

	"github.com/resortdesk/quote-service/internal/domain"
	generateQuote "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
)

// StayDates даты проживания в HTTP запросе
type StayDates struct {
	CheckIn  string `json:"checkIn"`  // "2025-12-20"
	CheckOut string `json:"checkOut"` // "2025-12-22"
}

// QuoteRequest HTTP request model (общий для генерации и предпросмотра)
type QuoteRequest struct {
	CustomerName    string                     `json:"customerName"`
	Rooms           []domain.RoomConfiguration `json:"rooms"`
	Dates           StayDates                  `json:"dates"`
	MealPlans       []domain.MealPlanCode      `json:"mealPlans"`
	ClientType      string                     `json:"clientType"`
	OverallDiscount float64                    `json:"overallDiscount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CustomerName string       `json:"customerName"`
	Quote        domain.Quote `json:"quote"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*generateQuote.Request, error) {
	checkIn, err := domain.ParseDate(r.Dates.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := domain.ParseDate(r.Dates.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	return &generateQuote.Request{
		CustomerName:    r.CustomerName,
		Rooms:           r.Rooms,
		Dates:           domain.DateRange{CheckIn: checkIn, CheckOut: checkOut},
		MealPlans:       r.MealPlans,
		ClientType:      domain.ClientType(r.ClientType),
		OverallDiscount: r.OverallDiscount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		CustomerName: resp.CustomerName,
		Quote:        resp.Quote,
	}
}
