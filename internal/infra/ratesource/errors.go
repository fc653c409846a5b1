package ratesource

import "errors"

var (
	// ErrReadFile возвращается, если файл тарифов не удалось прочитать или разобрать
	ErrReadFile = errors.New("ratesource: failed to read rates file")

	// ErrInvalidTable возвращается, если тарифная таблица не прошла проверку
	ErrInvalidTable = errors.New("ratesource: invalid rate table")

	// ErrPersist возвращается, если новую таблицу не удалось сохранить в файл
	ErrPersist = errors.New("ratesource: failed to persist rates file")
)
