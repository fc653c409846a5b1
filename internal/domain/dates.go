package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DateFormat формат календарной даты в API и текстах
const DateFormat = "2006-01-02"

// DateRange даты заезда и выезда (без времени). Нулевая дата означает "не указана".
// В JSON даты пишутся как YYYY-MM-DD, неуказанная дата - пустая строка.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type dateRangeJSON struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

func (d DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeJSON{
		CheckIn:  FormatDate(d.CheckIn),
		CheckOut: FormatDate(d.CheckOut),
	})
}

func (d *DateRange) UnmarshalJSON(data []byte) error {
	var raw dateRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	checkIn, err := ParseDate(raw.CheckIn)
	if err != nil {
		return fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := ParseDate(raw.CheckOut)
	if err != nil {
		return fmt.Errorf("checkOut: %w", err)
	}

	d.CheckIn = checkIn
	d.CheckOut = checkOut
	return nil
}

// IsComplete возвращает true, если указаны обе даты
func (d DateRange) IsComplete() bool {
	return !d.CheckIn.IsZero() && !d.CheckOut.IsZero()
}

// Nights количество ночей: ceil((checkOut - checkIn) в днях).
// Может быть нулевым или отрицательным, если выезд не позже заезда.
func (d DateRange) Nights() int {
	if !d.IsComplete() {
		return 0
	}
	days := d.CheckOut.Sub(d.CheckIn).Hours() / 24
	return int(math.Ceil(days))
}

// IsValidFor проверяет пригодность диапазона для бронирования:
// заезд не раньше today и выезд строго после заезда
func (d DateRange) IsValidFor(today time.Time) bool {
	if !d.IsComplete() {
		return false
	}
	return !DateOnly(d.CheckIn).Before(DateOnly(today)) && d.CheckOut.After(d.CheckIn)
}

// DateOnly обнуляет время, сохраняя локацию
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate разбирает дату YYYY-MM-DD; пустая строка дает нулевую дату
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateFormat, s)
}

// FormatDate форматирует дату YYYY-MM-DD; нулевая дата дает пустую строку
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}
