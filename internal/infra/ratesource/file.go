package ratesource

import "github.com/resortdesk/quote-service/internal/domain"

// fileTable отражение RateTable для записи в TOML: кодировщик toml
// не умеет ключи карт именованных строковых типов (Season, RoomType, MealPlanCode)
type fileTable struct {
	Seasons      map[string]fileSeason          `toml:"seasons"`
	MealPlans    map[string]domain.MealPlanRate `toml:"meal_plans"`
	GSTThreshold float64                        `toml:"gst_threshold"`
	GSTRates     domain.GSTRates                `toml:"gst_rates"`
}

type fileSeason struct {
	Rates map[string]domain.RoomRate `toml:"rates"`
}

func toFileTable(table *domain.RateTable) fileTable {
	out := fileTable{
		Seasons:      make(map[string]fileSeason, len(table.Seasons)),
		MealPlans:    make(map[string]domain.MealPlanRate, len(table.MealPlans)),
		GSTThreshold: table.GSTThreshold,
		GSTRates:     table.GSTRates,
	}

	for season, seasonRates := range table.Seasons {
		rates := make(map[string]domain.RoomRate, len(seasonRates.Rates))
		for roomType, rate := range seasonRates.Rates {
			rates[string(roomType)] = rate
		}
		out.Seasons[string(season)] = fileSeason{Rates: rates}
	}

	for code, plan := range table.MealPlans {
		out.MealPlans[string(code)] = plan
	}

	return out
}
