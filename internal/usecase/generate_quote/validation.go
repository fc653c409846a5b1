package generate_quote

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/resortdesk/quote-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}

	if len(req.Rooms) > domain.MaxRoomsPerQuote {
		return fmt.Errorf("%w: at most %d rooms per quote", ErrInvalidInput, domain.MaxRoomsPerQuote)
	}

	ids := make(map[string]struct{}, len(req.Rooms))
	for i := range req.Rooms {
		room := &req.Rooms[i]
		if !room.Type.IsValid() {
			return fmt.Errorf("%w: room %d has unknown type %q", ErrInvalidInput, i+1, room.Type)
		}
		if !room.HasValidOccupancy() {
			return fmt.Errorf("%w: room %d has negative occupancy", ErrInvalidInput, i+1)
		}
		if room.ID == "" {
			continue
		}
		if _, ok := ids[room.ID]; ok {
			return fmt.Errorf("%w: duplicate room id %q", ErrInvalidInput, room.ID)
		}
		ids[room.ID] = struct{}{}
	}

	if req.Dates.CheckIn.IsZero() || req.Dates.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if req.ClientType != "" && !req.ClientType.IsValid() {
		return fmt.Errorf("%w: unknown client type %q", ErrInvalidInput, req.ClientType)
	}

	if math.IsNaN(req.OverallDiscount) || math.Abs(req.OverallDiscount) > 100 {
		return fmt.Errorf("%w: overall discount must be within [-100, 100]", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	return nil
}

// validateDates проверяет пригодность дат для бронирования
func validateDates(dates domain.DateRange, today time.Time) error {
	if !dates.CheckOut.After(dates.CheckIn) {
		return ErrInvalidDateRange
	}

	if domain.DateOnly(dates.CheckIn).Before(domain.DateOnly(today)) {
		return fmt.Errorf("%w: %s", ErrCheckInInPast, domain.FormatDate(dates.CheckIn))
	}

	return nil
}

// normalizeRooms проставляет id номерам без id: room-1, room-2, ...
func normalizeRooms(rooms []domain.RoomConfiguration) []domain.RoomConfiguration {
	result := make([]domain.RoomConfiguration, len(rooms))
	copy(result, rooms)

	used := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		if r.ID != "" {
			used[r.ID] = struct{}{}
		}
	}

	next := 1
	for i := range result {
		if result[i].ID != "" {
			continue
		}
		for {
			id := fmt.Sprintf("room-%d", next)
			next++
			if _, ok := used[id]; !ok {
				result[i].ID = id
				used[id] = struct{}{}
				break
			}
		}
	}
	return result
}
