package pricing

import (
	"fmt"
	"math"

	"github.com/resortdesk/quote-service/internal/domain"
)

// ComputeTotals рассчитывает полную стоимость предложения.
//
// Без номеров или без одной из дат возвращается нулевой расчет - это
// состояние "данных пока недостаточно", а не бесплатное предложение.
// Отсутствующие в таблице тарифы считаются как 0 и перечисляются в Fallbacks.
// Функция чистая: одинаковые входные данные дают идентичный результат.
func ComputeTotals(
	rooms []domain.RoomConfiguration,
	dates domain.DateRange,
	table *domain.RateTable,
	mealPlans []domain.MealPlanCode,
	overallDiscountPercent float64,
) domain.QuoteBreakdown {
	if len(rooms) == 0 || !dates.IsComplete() {
		return domain.QuoteBreakdown{Items: []domain.LineItem{}}
	}

	nights := dates.Nights()
	season := domain.ResolveSeason(dates.CheckIn)

	result := domain.QuoteBreakdown{
		Season: season,
		Items:  make([]domain.LineItem, 0, len(rooms)),
	}

	for i, room := range rooms {
		baseRate, ok := table.RoomRate(season, room.Type, room.WithAC)
		if !ok {
			result.Fallbacks = append(result.Fallbacks, domain.Fallback{
				Kind:      domain.FallbackRoomRate,
				RoomIndex: i + 1,
				RoomType:  room.Type,
				Season:    season,
				WithAC:    room.WithAC,
			})
		}

		roomTotal := baseRate * float64(nights)
		roomDiscount := room.PerNightDiscounts * float64(nights)
		roomSubtotal := roomTotal - roomDiscount

		result.Subtotal += roomSubtotal
		result.Items = append(result.Items, domain.LineItem{
			Room:     fmt.Sprintf("Room %d", i+1),
			Type:     room.Type,
			Nights:   nights,
			BaseRate: baseRate,
			Total:    roomTotal,
			Discount: roomDiscount,
			Subtotal: roomSubtotal,
		})
	}

	if len(mealPlans) > 0 {
		totalGuests := 0
		for i := range rooms {
			totalGuests += rooms[i].MealGuests()
		}

		for _, plan := range mealPlans {
			planRate, ok := table.MealPlanRate(plan)
			if !ok {
				result.Fallbacks = append(result.Fallbacks, domain.Fallback{
					Kind:     domain.FallbackMealPlanRate,
					MealPlan: plan,
				})
			}
			result.MealPlanTotal += planRate * float64(totalGuests) * float64(nights)
		}
	}

	preDiscount := result.Subtotal + result.MealPlanTotal
	discountAmount := preDiscount * math.Abs(overallDiscountPercent) / 100

	switch {
	case overallDiscountPercent > 0:
		result.Discount = discountAmount
	case overallDiscountPercent < 0:
		result.Discount = -discountAmount
	}

	afterDiscount := preDiscount - result.Discount

	// Средняя цена номера за ночь нужна для выбора ставки GST и для отображения
	if roomNights := len(rooms) * nights; roomNights != 0 {
		result.AvgRoomRate = afterDiscount / float64(roomNights)
	}

	gstRate := 0.0
	if table != nil {
		gstRate = table.GSTRateFor(result.AvgRoomRate)
	}

	result.GSTAmount = afterDiscount * gstRate
	result.Total = afterDiscount + result.GSTAmount
	result.GSTRate = gstRate * 100

	return result
}
