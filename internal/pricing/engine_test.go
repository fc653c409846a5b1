package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resortdesk/quote-service/internal/domain"
)

func testRateTable() *domain.RateTable {
	return &domain.RateTable{
		Seasons: map[domain.Season]domain.SeasonRates{
			domain.SeasonPeak: {Rates: map[domain.RoomType]domain.RoomRate{
				domain.RoomTypeDeluxe:      {WithAC: 5000, WithoutAC: 4200},
				domain.RoomTypeSuperDeluxe: {WithAC: 7000, WithoutAC: 6200},
				domain.RoomTypeSuite:       {WithAC: 12000, WithoutAC: 11000},
			}},
			domain.SeasonLow: {Rates: map[domain.RoomType]domain.RoomRate{
				domain.RoomTypeDeluxe: {WithAC: 3000, WithoutAC: 2500},
			}},
		},
		MealPlans: map[domain.MealPlanCode]domain.MealPlanRate{
			domain.MealPlanCP:  {Name: "Breakfast", Rate: 400},
			domain.MealPlanMAP: {Name: "Breakfast + Dinner", Rate: 900},
		},
		GSTThreshold: 7000,
		GSTRates:     domain.GSTRates{Below: 0.12, Above: 0.18},
	}
}

func stay(checkIn string, nights int) domain.DateRange {
	in, _ := time.Parse(domain.DateFormat, checkIn)
	return domain.DateRange{CheckIn: in, CheckOut: in.AddDate(0, 0, nights)}
}

func deluxe(adults int) domain.RoomConfiguration {
	return domain.RoomConfiguration{ID: "room-1", Type: domain.RoomTypeDeluxe, Adults: adults, WithAC: true}
}

func TestComputeTotals_SingleDeluxePeak(t *testing.T) {
	b := ComputeTotals([]domain.RoomConfiguration{deluxe(2)}, stay("2025-12-20", 2), testRateTable(), nil, 0)

	assert.Equal(t, domain.SeasonPeak, b.Season)
	assert.Equal(t, 10000.0, b.Subtotal)
	assert.Equal(t, 0.0, b.MealPlanTotal)
	assert.Equal(t, 0.0, b.Discount)
	assert.Equal(t, 5000.0, b.AvgRoomRate)
	assert.Equal(t, 12.0, b.GSTRate)
	assert.Equal(t, 1200.0, b.GSTAmount)
	assert.Equal(t, 11200.0, b.Total)
	assert.Empty(t, b.Fallbacks)

	require.Len(t, b.Items, 1)
	assert.Equal(t, "Room 1", b.Items[0].Room)
	assert.Equal(t, 2, b.Items[0].Nights)
	assert.Equal(t, 5000.0, b.Items[0].BaseRate)
	assert.Equal(t, 10000.0, b.Items[0].Subtotal)
}

func TestComputeTotals_NotEnoughInput(t *testing.T) {
	table := testRateTable()

	tests := []struct {
		name  string
		rooms []domain.RoomConfiguration
		dates domain.DateRange
	}{
		{name: "no rooms", rooms: nil, dates: stay("2025-12-20", 2)},
		{name: "no check-out", rooms: []domain.RoomConfiguration{deluxe(2)}, dates: domain.DateRange{CheckIn: stay("2025-12-20", 2).CheckIn}},
		{name: "no dates", rooms: []domain.RoomConfiguration{deluxe(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeTotals(tt.rooms, tt.dates, table, []domain.MealPlanCode{domain.MealPlanCP}, 10)
			assert.Equal(t, 0.0, b.Total)
			assert.Equal(t, 0.0, b.Subtotal)
			assert.NotNil(t, b.Items)
			assert.Empty(t, b.Items)
		})
	}
}

func TestComputeTotals_PerNightDiscount(t *testing.T) {
	discounted := deluxe(2)
	discounted.ID = "room-2"
	discounted.PerNightDiscounts = 500

	rooms := []domain.RoomConfiguration{deluxe(2), discounted}
	b := ComputeTotals(rooms, stay("2025-12-20", 3), testRateTable(), nil, 0)

	require.Len(t, b.Items, 2)
	assert.Equal(t, 0.0, b.Items[0].Discount)
	assert.Equal(t, 1500.0, b.Items[1].Discount)
	assert.Equal(t, 13500.0, b.Items[1].Subtotal)
	assert.Equal(t, 28500.0, b.Subtotal)
	assert.Equal(t, 4750.0, b.AvgRoomRate)

	withOverall := ComputeTotals(rooms, stay("2025-12-20", 3), testRateTable(), nil, 10)
	assert.InDelta(t, 2850.0, withOverall.Discount, 1e-9)
	assert.InDelta(t, 25650.0*1.12, withOverall.Total, 1e-6)
}

func TestComputeTotals_MealPlansCountAdultsAndChildrenOnly(t *testing.T) {
	room := deluxe(2)
	room.Children = 1
	room.Infants = 1
	room.Pets = 2

	b := ComputeTotals(
		[]domain.RoomConfiguration{room},
		stay("2025-12-20", 2),
		testRateTable(),
		[]domain.MealPlanCode{domain.MealPlanCP, domain.MealPlanMAP},
		0,
	)

	// (400 + 900) * 3 гостя * 2 ночи
	assert.Equal(t, 7800.0, b.MealPlanTotal)
	assert.Equal(t, 10000.0, b.Subtotal)
	assert.Equal(t, 8900.0, b.AvgRoomRate)
	assert.InDelta(t, 18.0, b.GSTRate, 1e-9)
	assert.InDelta(t, 17800*0.18, b.GSTAmount, 1e-9)
}

func TestComputeTotals_DiscountSignLaw(t *testing.T) {
	rooms := []domain.RoomConfiguration{deluxe(2)}
	dates := stay("2025-12-20", 2)
	table := testRateTable()

	discounted := ComputeTotals(rooms, dates, table, nil, 10)
	plain := ComputeTotals(rooms, dates, table, nil, 0)
	marked := ComputeTotals(rooms, dates, table, nil, -10)

	assert.Equal(t, 1000.0, discounted.Discount)
	assert.Equal(t, -1000.0, marked.Discount)
	assert.Equal(t, 10000.0, discounted.PreDiscountTotal())
	assert.Equal(t, discounted.PreDiscountTotal(), marked.PreDiscountTotal())

	assert.Less(t, discounted.PreDiscountTotal()-discounted.Discount, discounted.PreDiscountTotal())
	assert.Greater(t, marked.PreDiscountTotal()-marked.Discount, marked.PreDiscountTotal())
	assert.Less(t, discounted.Total, plain.Total)
	assert.Less(t, plain.Total, marked.Total)
}

func TestComputeTotals_NoDiscountTotalsLaw(t *testing.T) {
	table := testRateTable()
	cases := [][]domain.RoomConfiguration{
		{deluxe(1)},
		{deluxe(2), {ID: "room-2", Type: domain.RoomTypeSuite, Adults: 2, WithAC: false}},
		{{ID: "room-1", Type: domain.RoomTypeSuperDeluxe, Adults: 2, WithAC: true, PerNightDiscounts: 250}},
	}

	for _, rooms := range cases {
		for nights := 1; nights <= 4; nights++ {
			b := ComputeTotals(rooms, stay("2026-01-10", nights), table, nil, 0)
			assert.InDelta(t, b.Subtotal+b.GSTAmount, b.Total, 1e-9)
			assert.InDelta(t, b.Subtotal*b.GSTRate/100, b.GSTAmount, 1e-6)
		}
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	rooms := []domain.RoomConfiguration{deluxe(2), {ID: "room-2", Type: domain.RoomTypeSuite, Adults: 1, Children: 2}}
	plans := []domain.MealPlanCode{domain.MealPlanMAP}

	first := ComputeTotals(rooms, stay("2026-02-01", 3), testRateTable(), plans, 7.5)
	second := ComputeTotals(rooms, stay("2026-02-01", 3), testRateTable(), plans, 7.5)

	assert.Equal(t, first, second)
}

func TestComputeTotals_Fallbacks(t *testing.T) {
	rooms := []domain.RoomConfiguration{
		deluxe(2),
		{ID: "room-2", Type: domain.RoomTypeSuite, Adults: 2, WithAC: true},
	}
	plans := []domain.MealPlanCode{domain.MealPlanCP, domain.MealPlanAP}

	b := ComputeTotals(rooms, stay("2026-07-01", 2), testRateTable(), plans, 0)

	assert.Equal(t, domain.SeasonLow, b.Season)
	require.Len(t, b.Items, 2)
	assert.Equal(t, 0.0, b.Items[1].BaseRate)
	assert.Equal(t, 6000.0, b.Subtotal)
	// CP 400 * 4 гостя * 2 ночи, AP отсутствует
	assert.Equal(t, 3200.0, b.MealPlanTotal)

	require.Len(t, b.Fallbacks, 2)
	assert.Equal(t, domain.FallbackRoomRate, b.Fallbacks[0].Kind)
	assert.Equal(t, 2, b.Fallbacks[0].RoomIndex)
	assert.Equal(t, domain.RoomTypeSuite, b.Fallbacks[0].RoomType)
	assert.Equal(t, domain.MealPlanAP, b.Fallbacks[1].MealPlan)

	roomFallbacks, mealFallbacks := b.CountFallbacks()
	assert.Equal(t, 1, roomFallbacks)
	assert.Equal(t, 1, mealFallbacks)
}

func TestComputeTotals_NilTable(t *testing.T) {
	b := ComputeTotals([]domain.RoomConfiguration{deluxe(2)}, stay("2025-12-20", 2), nil, nil, 0)

	assert.Equal(t, 0.0, b.Total)
	assert.Equal(t, 0.0, b.GSTRate)
	require.Len(t, b.Fallbacks, 1)
}

func TestComputeTotals_ZeroNightsPropagate(t *testing.T) {
	b := ComputeTotals([]domain.RoomConfiguration{deluxe(2)}, stay("2025-12-20", 0), testRateTable(), nil, 0)

	assert.Equal(t, 0, b.Items[0].Nights)
	assert.Equal(t, 0.0, b.Subtotal)
	assert.Equal(t, 0.0, b.AvgRoomRate)
}

func TestComputeTotals_SeasonFromCheckInOnly(t *testing.T) {
	// заезд в ноябре, выезд в декабре: весь период по сезону regular
	b := ComputeTotals([]domain.RoomConfiguration{deluxe(2)}, stay("2025-11-30", 2), testRateTable(), nil, 0)

	assert.Equal(t, domain.SeasonRegular, b.Season)
	require.Len(t, b.Fallbacks, 1)
}
