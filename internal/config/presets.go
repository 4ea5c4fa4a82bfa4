package config

import (
	"sort"

	"github.com/san-kum/stockout/internal/dynamo"
)

var Presets = map[string]dynamo.Config{
	// 30 days of the default catalogue item.
	"default": dynamo.DefaultConfig(),
	"steady": {
		InitialInventory: 1000, BasePrice: 50, ProductionRate: 15, BaseDemand: 2,
		Popularity: 1, FluctuationPct: 0, FluctuationPeriod: 24, Horizon: 720, Step: 1,
	},
	"bestseller": {
		InitialInventory: 100, BasePrice: 50, ProductionRate: 10, BaseDemand: 10,
		Popularity: 10, FluctuationPct: 15, FluctuationPeriod: 24, Horizon: 720, Step: 1,
	},
	"premium": {
		InitialInventory: 500, BasePrice: 140, ProductionRate: 12, BaseDemand: 8,
		Popularity: 5, FluctuationPct: 10, FluctuationPeriod: 24, Horizon: 720, Step: 1,
	},
	"weekly-cycle": {
		InitialInventory: 2000, BasePrice: 80, ProductionRate: 20, BaseDemand: 6,
		Popularity: 6, FluctuationPct: 40, FluctuationPeriod: 168, Horizon: 1344, Step: 1,
	},
	"fine-grid": {
		InitialInventory: 1000, BasePrice: 50, ProductionRate: 15, BaseDemand: 10,
		Popularity: 5, FluctuationPct: 15, FluctuationPeriod: 24, Horizon: 720, Step: 0.25,
	},
}

func GetPreset(name string) (dynamo.Config, bool) {
	cfg, ok := Presets[name]
	return cfg, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
