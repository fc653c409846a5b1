package save_quote_as_lead

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_quote_as_lead: invalid input data")

	// ErrQuoteAlreadySaved возвращается, когда предложение уже сохранено в этом лиде
	ErrQuoteAlreadySaved = errors.New("save_quote_as_lead: quote already saved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_quote_as_lead: internal error")
)
