package models

import (
	"net/url"
	"strings"
	"time"

	"github.com/resortdesk/quote-service/internal/domain"
)

// Request модели

// ListLeadsRequest запрос списка лидов
type ListLeadsRequest struct {
	Status *string // nil - все статусы
	Search string
	Sort   string // newest, oldest, checkin, value; пусто - newest
}

// UpdateStatusRequest запрос на смену статуса лида
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateNotesRequest запрос на замену заметок лида
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// ConfirmBookingRequest запрос на подтверждение бронирования
type ConfirmBookingRequest struct {
	AdvanceAmount *float64 `json:"advanceAmount,omitempty"`
}

// Response модели

// LeadResponse ответ с данными лида
type LeadResponse struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Mobile          string         `json:"mobile"`
	CheckInDate     string         `json:"checkInDate"`  // "2025-12-20"
	CheckOutDate    string         `json:"checkOutDate"` // "2025-12-22"
	Status          string         `json:"status"`
	QuoteVariations []domain.Quote `json:"quoteVariations"`
	LatestTotal     float64        `json:"latestTotal"`
	ReminderAt      *time.Time     `json:"reminderAt,omitempty"`
	ReminderDue     bool           `json:"reminderDue"`
	Notes           string         `json:"notes"`
	WhatsAppLink    string         `json:"whatsappLink,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// LeadListResponse список лидов
type LeadListResponse struct {
	Leads []*LeadResponse `json:"leads"`
	Total int             `json:"total"`
}

// ConfirmationResponse подтверждение бронирования с данными лида
type ConfirmationResponse struct {
	LeadID       int64                      `json:"leadId"`
	QuoteID      string                     `json:"quoteId"`
	Confirmation domain.BookingConfirmation `json:"confirmation"`
	WhatsAppLink string                     `json:"whatsappLink,omitempty"`
}

// ConfirmedBooking подтвержденное бронирование (выигранный лид)
type ConfirmedBooking struct {
	Lead         *LeadResponse               `json:"lead"`
	Total        float64                     `json:"total"`
	Confirmation *domain.BookingConfirmation `json:"confirmation,omitempty"`
}

// BookingsSummary сводка по подтвержденным бронированиям
type BookingsSummary struct {
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
	AverageValue float64 `json:"averageValue"`
}

// ConfirmedBookingsResponse подтвержденные бронирования и сводка
type ConfirmedBookingsResponse struct {
	Bookings []*ConfirmedBooking `json:"bookings"`
	Summary  BookingsSummary     `json:"summary"`
}

// FromDomainLead конвертирует domain.Lead в LeadResponse
func FromDomainLead(lead *domain.Lead, now time.Time) *LeadResponse {
	quotes := lead.QuoteVariations
	if quotes == nil {
		quotes = []domain.Quote{}
	}

	return &LeadResponse{
		ID:              lead.ID,
		Name:            lead.Name,
		Mobile:          lead.Mobile,
		CheckInDate:     domain.FormatDate(lead.CheckInDate),
		CheckOutDate:    domain.FormatDate(lead.CheckOutDate),
		Status:          string(lead.Status),
		QuoteVariations: quotes,
		LatestTotal:     lead.LatestTotal(),
		ReminderAt:      lead.ReminderAt,
		ReminderDue:     lead.IsReminderDue(now) && !lead.Status.IsTerminal(),
		Notes:           lead.Notes,
		WhatsAppLink:    WhatsAppLink(lead.Mobile, ""),
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
	}
}

// FromDomainLeadList конвертирует список лидов
func FromDomainLeadList(leads []*domain.Lead, now time.Time) *LeadListResponse {
	result := make([]*LeadResponse, 0, len(leads))
	for _, l := range leads {
		result = append(result, FromDomainLead(l, now))
	}
	return &LeadListResponse{Leads: result, Total: len(result)}
}

// WhatsAppLink ссылка wa.me на номер гостя с необязательным текстом.
// Пустая строка, если в номере нет цифр.
func WhatsAppLink(mobile, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, mobile)

	if digits == "" {
		return ""
	}

	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}
