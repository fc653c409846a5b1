package parse_inquiry

import (
	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/inquiry"
)

// ParseInquiryRequest HTTP request model
type ParseInquiryRequest struct {
	Text string `json:"text"`
}

type DatesResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type GuestCountResponse struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type ContactResponse struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// ParseInquiryResponse HTTP response model
type ParseInquiryResponse struct {
	Dates       DatesResponse              `json:"dates"`
	Rooms       []domain.RoomConfiguration `json:"rooms"`
	GuestCount  GuestCountResponse         `json:"guestCount"`
	Preferences []string                   `json:"preferences"`
	DateTokens  []string                   `json:"dateTokens"`
	Contact     ContactResponse            `json:"contact"`
}

// FromParsed собирает HTTP response из результата разбора
func FromParsed(parsed inquiry.ParsedInquiry, contact inquiry.ContactInfo) *ParseInquiryResponse {
	tokens := parsed.DateTokens
	if tokens == nil {
		tokens = []string{}
	}

	return &ParseInquiryResponse{
		Dates:       DatesResponse{CheckIn: parsed.Dates.CheckIn, CheckOut: parsed.Dates.CheckOut},
		Rooms:       parsed.Rooms,
		GuestCount:  GuestCountResponse{Adults: parsed.GuestCount.Adults, Children: parsed.GuestCount.Children},
		Preferences: parsed.Preferences,
		DateTokens:  tokens,
		Contact:     ContactResponse{Name: contact.Name, Mobile: contact.Mobile, Email: contact.Email},
	}
}
