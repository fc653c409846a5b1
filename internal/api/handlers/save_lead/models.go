package save_lead

import (
	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
	saveQuoteAsLead "github.com/resortdesk/quote-service/internal/usecase/save_quote_as_lead"
)

// SaveLeadRequest HTTP request model
type SaveLeadRequest struct {
	CustomerName string       `json:"customerName"`
	Mobile       string       `json:"mobile"`
	Preferences  []string     `json:"preferences,omitempty"`
	Quote        domain.Quote `json:"quote"`
}

// SaveLeadResponse HTTP response model
type SaveLeadResponse struct {
	Created bool                 `json:"created"`
	Lead    *models.LeadResponse `json:"lead"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SaveLeadRequest) ToUseCaseRequest() *saveQuoteAsLead.Request {
	return &saveQuoteAsLead.Request{
		CustomerName: r.CustomerName,
		Mobile:       r.Mobile,
		Preferences:  r.Preferences,
		Quote:        r.Quote,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveQuoteAsLead.Response) *SaveLeadResponse {
	return &SaveLeadResponse{
		Created: resp.Created,
		Lead:    resp.Lead,
	}
}
