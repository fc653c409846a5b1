package domain

import "time"

// MealPlanCode код плана питания
type MealPlanCode string

const (
	MealPlanEP  MealPlanCode = "EP"  // без питания
	MealPlanCP  MealPlanCode = "CP"  // завтрак
	MealPlanMAP MealPlanCode = "MAP" // завтрак и ужин
	MealPlanAP  MealPlanCode = "AP"  // всё включено
)

// ClientType тип клиента; на цену не влияет, сохраняется в предложении
type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCorporate  ClientType = "corporate"
	ClientTypeGroup      ClientType = "group"
	ClientTypeAgent      ClientType = "agent"
)

// IsValid проверяет тип клиента
func (c ClientType) IsValid() bool {
	switch c {
	case ClientTypeIndividual, ClientTypeCorporate, ClientTypeGroup, ClientTypeAgent:
		return true
	default:
		return false
	}
}

// QuoteConfiguration входные данные, по которым построено предложение
type QuoteConfiguration struct {
	Rooms           []RoomConfiguration `json:"rooms"`
	Dates           DateRange           `json:"dates"`
	MealPlans       []MealPlanCode      `json:"mealPlans"`
	ClientType      ClientType          `json:"clientType"`
	OverallDiscount float64             `json:"overallDiscount"` // процент; отрицательный - наценка
	Nights          int                 `json:"nights"`
}

// LineItem строка расчета по одному номеру
type LineItem struct {
	Room     string   `json:"room"`
	Type     RoomType `json:"type"`
	Nights   int      `json:"nights"`
	BaseRate float64  `json:"baseRate"`
	Total    float64  `json:"total"`
	Discount float64  `json:"discount"`
	Subtotal float64  `json:"subtotal"`
}

// FallbackKind вид тарифа, для которого поиск вернул 0
type FallbackKind string

const (
	FallbackRoomRate     FallbackKind = "room_rate"
	FallbackMealPlanRate FallbackKind = "meal_plan_rate"
)

// Fallback запись о тарифе, которого нет в таблице и который посчитан как 0
type Fallback struct {
	Kind      FallbackKind `json:"kind"`
	RoomIndex int          `json:"roomIndex,omitempty"` // 1-based, только для room_rate
	RoomType  RoomType     `json:"roomType,omitempty"`
	Season    Season       `json:"season,omitempty"`
	WithAC    bool         `json:"withAC,omitempty"`
	MealPlan  MealPlanCode `json:"mealPlan,omitempty"`
}

// QuoteBreakdown полный расчет стоимости
type QuoteBreakdown struct {
	Subtotal      float64    `json:"subtotal"`
	MealPlanTotal float64    `json:"mealPlanTotal"`
	Discount      float64    `json:"discount"` // >0 скидка, <0 наценка
	GSTRate       float64    `json:"gstRate"`  // в процентах
	GSTAmount     float64    `json:"gstAmount"`
	Total         float64    `json:"total"`
	AvgRoomRate   float64    `json:"avgRoomRate"`
	Season        Season     `json:"season,omitempty"`
	Items         []LineItem `json:"items"`
	Fallbacks     []Fallback `json:"fallbacks,omitempty"`
}

// IsComplete возвращает true, если все тарифы нашлись в таблице
func (b *QuoteBreakdown) IsComplete() bool {
	return len(b.Fallbacks) == 0
}

// PreDiscountTotal сумма номеров и питания до общей скидки
func (b *QuoteBreakdown) PreDiscountTotal() float64 {
	return b.Subtotal + b.MealPlanTotal
}

// CountFallbacks считает подстановки нуля по видам
func (b *QuoteBreakdown) CountFallbacks() (rooms, mealPlans int) {
	for _, f := range b.Fallbacks {
		switch f.Kind {
		case FallbackRoomRate:
			rooms++
		case FallbackMealPlanRate:
			mealPlans++
		}
	}
	return rooms, mealPlans
}

// BookingConfirmation подтверждение бронирования по выигранному лиду
type BookingConfirmation struct {
	ConfirmationText string    `json:"confirmationText"`
	GeneratedAt      time.Time `json:"generatedAt"`
	AdvanceAmount    *float64  `json:"advanceAmount,omitempty"`
}

// Quote сгенерированное предложение; после создания не изменяется
// (кроме прикрепления подтверждения бронирования)
type Quote struct {
	ID                  string               `json:"id"`
	CreatedAt           time.Time            `json:"createdAt"`
	Configuration       QuoteConfiguration   `json:"configuration"`
	Breakdown           QuoteBreakdown       `json:"breakdown"`
	GeneratedText       string               `json:"generatedText"`
	BookingConfirmation *BookingConfirmation `json:"bookingConfirmation,omitempty"`
}
