package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRateTable возвращается при некорректной тарифной таблице
var ErrInvalidRateTable = errors.New("invalid rate table")

// RoomRate стоимость номера за ночь
type RoomRate struct {
	WithAC    float64 `toml:"with_ac" json:"withAC"`
	WithoutAC float64 `toml:"without_ac" json:"withoutAC"`
}

// SeasonRates тарифы сезона по типам номеров
type SeasonRates struct {
	Rates map[RoomType]RoomRate `toml:"rates" json:"rates"`
}

// MealPlanRate стоимость плана питания на гостя за ночь
type MealPlanRate struct {
	Name string  `toml:"name" json:"name"`
	Rate float64 `toml:"rate" json:"rate"`
}

// GSTRates ставки GST (доли, например 0.12) ниже и выше порога
type GSTRates struct {
	Below float64 `toml:"below" json:"below"`
	Above float64 `toml:"above" json:"above"`
}

// RateTable тарифная таблица объекта. После загрузки только читается,
// обновление - целиком новой таблицей.
type RateTable struct {
	Seasons      map[Season]SeasonRates        `toml:"seasons" json:"seasons"`
	MealPlans    map[MealPlanCode]MealPlanRate `toml:"meal_plans" json:"mealPlans"`
	GSTThreshold float64                       `toml:"gst_threshold" json:"gstThreshold"`
	GSTRates     GSTRates                      `toml:"gst_rates" json:"gstRates"`
}

// RoomRate возвращает ставку за ночь; ok=false, если сезона или типа номера нет в таблице
func (t *RateTable) RoomRate(season Season, roomType RoomType, withAC bool) (float64, bool) {
	if t == nil {
		return 0, false
	}
	seasonRates, ok := t.Seasons[season]
	if !ok {
		return 0, false
	}
	rate, ok := seasonRates.Rates[roomType]
	if !ok {
		return 0, false
	}
	if withAC {
		return rate.WithAC, true
	}
	return rate.WithoutAC, true
}

// MealPlanRate возвращает ставку плана питания; ok=false, если плана нет в таблице
func (t *RateTable) MealPlanRate(code MealPlanCode) (float64, bool) {
	if t == nil {
		return 0, false
	}
	plan, ok := t.MealPlans[code]
	if !ok {
		return 0, false
	}
	return plan.Rate, true
}

// GSTRateFor выбирает ставку GST по средней стоимости номера за ночь
func (t *RateTable) GSTRateFor(avgRoomRate float64) float64 {
	if avgRoomRate > t.GSTThreshold {
		return t.GSTRates.Above
	}
	return t.GSTRates.Below
}

// Validate проверяет, что ставки неотрицательны, а GST - доли в [0, 1]
func (t *RateTable) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: table is empty", ErrInvalidRateTable)
	}

	for season, seasonRates := range t.Seasons {
		for roomType, rate := range seasonRates.Rates {
			if rate.WithAC < 0 || rate.WithoutAC < 0 {
				return fmt.Errorf("%w: negative rate for %s/%s", ErrInvalidRateTable, season, roomType)
			}
		}
	}

	for code, plan := range t.MealPlans {
		if plan.Rate < 0 {
			return fmt.Errorf("%w: negative meal plan rate for %s", ErrInvalidRateTable, code)
		}
	}

	if t.GSTThreshold < 0 {
		return fmt.Errorf("%w: negative GST threshold", ErrInvalidRateTable)
	}

	if t.GSTRates.Below < 0 || t.GSTRates.Below > 1 || t.GSTRates.Above < 0 || t.GSTRates.Above > 1 {
		return fmt.Errorf("%w: GST rates must be fractions between 0 and 1", ErrInvalidRateTable)
	}

	return nil
}
