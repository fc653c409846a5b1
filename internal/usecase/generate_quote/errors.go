package generate_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (нет номеров, нет дат, отрицательная загрузка, неизвестный тип номера)
	ErrInvalidInput = errors.New("generate_quote: invalid input data")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда
	ErrInvalidDateRange = errors.New("generate_quote: check-out must be after check-in")

	// ErrCheckInInPast возвращается, когда дата заезда в прошлом
	ErrCheckInInPast = errors.New("generate_quote: check-in date is in the past")
)
