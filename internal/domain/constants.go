package domain

import "time"

// Смещения напоминаний по статусам лида
const (
	ReminderOffsetOpen        = 2 * time.Hour
	ReminderOffsetContacted   = 24 * time.Hour
	ReminderOffsetNegotiation = 6 * time.Hour
	ReminderOffsetNurturing   = 72 * time.Hour
)

// Значения по умолчанию
const (
	DefaultCustomerName = "Valued Guest"
	DefaultClientType   = ClientTypeIndividual
	DefaultAdults       = 2
	MaxAdultsPerRoom    = 2
	MaxGuestsPerRoom    = 3
	DefaultStayNights   = 2
)

// Ограничения входных данных
const (
	MaxRoomsPerQuote = 50
	MaxNotesLength   = 2000
	MaxNameLength    = 200
)
