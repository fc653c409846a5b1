package clock

import "time"

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Real реальные часы для production
type Real struct{}

// Now возвращает текущее время в UTC
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed часы, всегда возвращающие одно и то же время (для тестов)
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// Today возвращает полночь текущего дня по часам c
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
