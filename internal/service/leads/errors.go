package leads

import "errors"

var (
	// ErrLeadNotFound возвращается, когда лид не найден
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidStatus возвращается при неизвестном статусе лида
	ErrInvalidStatus = errors.New("invalid lead status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrLeadNotWon возвращается при попытке подтвердить бронирование не выигранного лида
	ErrLeadNotWon = errors.New("lead is not won")

	// ErrNoQuotes возвращается, когда у лида нет ни одного предложения
	ErrNoQuotes = errors.New("lead has no quotes")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
