package models

import "time"

// LookupRequest запрос ставки номера на дату
type LookupRequest struct {
	Date     time.Time
	RoomType string
	WithAC   bool
}

// SeasonResponse сезон для даты
type SeasonResponse struct {
	Date   string `json:"date"`
	Season string `json:"season"`
}

// LookupResponse ставка номера за ночь; Found=false, если ставки нет в таблице
type LookupResponse struct {
	Date     string  `json:"date"`
	Season   string  `json:"season"`
	RoomType string  `json:"roomType"`
	WithAC   bool    `json:"withAC"`
	Rate     float64 `json:"rate"`
	Found    bool    `json:"found"`
}
