package rates

import "errors"

var (
	// ErrRatesUnavailable возвращается, когда тарифная таблица не загружена
	ErrRatesUnavailable = errors.New("rates: rate table is not loaded")

	// ErrInvalidRateTable возвращается при некорректной новой таблице
	ErrInvalidRateTable = errors.New("rates: invalid rate table")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rates: internal error")
)
