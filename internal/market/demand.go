package market

import (
	"math"

	"github.com/san-kum/stockout/internal/dynamo"
)

const (
	popularitySensitivity = 0.2
	popularityFloor       = 0.5
	popularityCeiling     = 2.0

	// secondaryRate is the angular rate (rad/h) of the amplitude modulation, a period of ~62.8 h.
	secondaryRate  = 0.1
	secondaryDepth = 0.5

	WeekHours        = 168.0
	SurgeStart       = 120.0
	SurgeEnd         = 144.0
	SurgeFluctuation = 0.2

	// ElasticityPivot is the price at which elasticity leaves demand unchanged.
	ElasticityPivot = 100.0
	elasticity      = 0.03
)

// PopularityMultiplier scales base demand by popularity, clamped to [0.5, 2].
func PopularityMultiplier(popularity float64) float64 {
	factor := 1 + (popularity-dynamo.PopularityNeutral)*popularitySensitivity
	return math.Max(popularityFloor, math.Min(factor, popularityCeiling))
}

// Fluctuation is the periodic demand perturbation at time t, before the surge.
func Fluctuation(t, amplitudePct, period float64) float64 {
	primary := math.Sin(2 * math.Pi * t / period)
	secondary := 1 + secondaryDepth*math.Sin(t*secondaryRate)
	return amplitudePct / 100 * primary * secondary
}

// InSurgeWindow reports whether t falls within hours [120, 144) of its week.
func InSurgeWindow(t float64) bool {
	w := math.Mod(t, WeekHours)
	if w < 0 {
		w += WeekHours
	}
	return w >= SurgeStart && w < SurgeEnd
}

// WeekendSurge returns the flat fluctuation added during the surge window.
func WeekendSurge(t float64) float64 {
	if InSurgeWindow(t) {
		return SurgeFluctuation
	}
	return 0
}

// ElasticityFactor scales demand up below the pivot price and down above it.
func ElasticityFactor(price float64) float64 {
	return 1 + elasticity*(ElasticityPivot-price)
}

// Demand returns the instantaneous demand rate in units per hour.
func Demand(level, t float64, cfg dynamo.Config) float64 {
	adjusted := cfg.BaseDemand * PopularityMultiplier(cfg.Popularity)
	fluc := Fluctuation(t, cfg.FluctuationPct, cfg.FluctuationPeriod) + WeekendSurge(t)
	price := Price(level, cfg.BasePrice)
	return adjusted * ElasticityFactor(price) * (1 + fluc)
}
