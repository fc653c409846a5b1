package domain

// RoomType тип номера
type RoomType string

const (
	RoomTypeDeluxe      RoomType = "deluxe"
	RoomTypeSuperDeluxe RoomType = "super_deluxe"
	RoomTypeSuite       RoomType = "suite"
)

// RoomTypes фиксированный набор типов номеров объекта
var RoomTypes = []RoomType{RoomTypeDeluxe, RoomTypeSuperDeluxe, RoomTypeSuite}

// IsValid проверяет, что тип номера входит в фиксированный набор
func (t RoomType) IsValid() bool {
	for _, rt := range RoomTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// RoomConfiguration конфигурация одного номера в предложении
type RoomConfiguration struct {
	ID       string   `json:"id"`
	Type     RoomType `json:"type"`
	Adults   int      `json:"adults"`
	Children int      `json:"children"`
	Infants  int      `json:"infants"`
	Pets     int      `json:"pets"`
	WithAC   bool     `json:"withAC"`
	// PerNightDiscounts скидка за ночь; отрицательное значение - наценка
	PerNightDiscounts float64 `json:"perNightDiscounts"`
}

// MealGuests количество гостей, оплачивающих питание (младенцы и питомцы не учитываются)
func (r *RoomConfiguration) MealGuests() int {
	return r.Adults + r.Children
}

// HasValidOccupancy проверяет, что количество гостей неотрицательно
func (r *RoomConfiguration) HasValidOccupancy() bool {
	return r.Adults >= 0 && r.Children >= 0 && r.Infants >= 0 && r.Pets >= 0
}
