package dynamo

import (
	"fmt"
	"math"
	"sort"
)

// Popularity bounds. A popularity of PopularityNeutral leaves base demand unchanged.
const (
	PopularityMin     = 1.0
	PopularityMax     = 10.0
	PopularityNeutral = 5.0
)

// Config holds the parameters of one simulation run. Rates are per hour,
// times are in hours and FluctuationPct is a percentage.
type Config struct {
	InitialInventory  float64 `json:"initial_inventory"`
	BasePrice         float64 `json:"base_price"`
	ProductionRate    float64 `json:"production_rate"`
	BaseDemand        float64 `json:"base_demand"`
	Popularity        float64 `json:"popularity"`
	FluctuationPct    float64 `json:"fluctuation_amplitude_pct"`
	FluctuationPeriod float64 `json:"fluctuation_period_hours"`
	Horizon           float64 `json:"horizon_hours"`
	Step              float64 `json:"step_hours"`
}

// DefaultConfig returns a 30-day run at one-hour resolution.
func DefaultConfig() Config {
	return Config{
		InitialInventory:  1000,
		BasePrice:         50,
		ProductionRate:    15,
		BaseDemand:        10,
		Popularity:        PopularityNeutral,
		FluctuationPct:    15,
		FluctuationPeriod: 24,
		Horizon:           720,
		Step:              1,
	}
}

// NewConfig validates c and returns it. The returned error wraps
// ErrInvalidConfiguration.
func NewConfig(c Config) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every parameter bound and the cross-field invariants.
func (c Config) Validate() error {
	for _, p := range c.fields() {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return &ConfigError{Field: p.name, Value: p.value, Rule: "must be finite"}
		}
	}

	switch {
	case c.InitialInventory <= 0:
		return &ConfigError{Field: "initial_inventory", Value: c.InitialInventory, Rule: "must be positive"}
	case c.BasePrice <= 0:
		return &ConfigError{Field: "base_price", Value: c.BasePrice, Rule: "must be positive"}
	case c.ProductionRate < 0:
		return &ConfigError{Field: "production_rate", Value: c.ProductionRate, Rule: "must not be negative"}
	case c.BaseDemand < 0:
		return &ConfigError{Field: "base_demand", Value: c.BaseDemand, Rule: "must not be negative"}
	case c.Popularity < PopularityMin || c.Popularity > PopularityMax:
		return &ConfigError{Field: "popularity", Value: c.Popularity, Rule: "must be within [1, 10]"}
	case c.FluctuationPct < 0:
		return &ConfigError{Field: "fluctuation_amplitude_pct", Value: c.FluctuationPct, Rule: "must not be negative"}
	case c.FluctuationPeriod <= 0:
		return &ConfigError{Field: "fluctuation_period_hours", Value: c.FluctuationPeriod, Rule: "must be positive"}
	case c.Horizon <= 0:
		return &ConfigError{Field: "horizon_hours", Value: c.Horizon, Rule: "must be positive"}
	case c.Step <= 0:
		return &ConfigError{Field: "step_hours", Value: c.Step, Rule: "must be positive"}
	case c.ProductionRate > c.InitialInventory:
		return &ConfigError{Field: "production_rate", Value: c.ProductionRate, Rule: "must not exceed initial_inventory"}
	case c.BaseDemand > c.ProductionRate:
		return &ConfigError{Field: "base_demand", Value: c.BaseDemand, Rule: "must not exceed production_rate"}
	}
	return nil
}

// Steps returns the number of samples a full-horizon run produces.
func (c Config) Steps() int {
	return SampleCount(c.Horizon, c.Step)
}

// SampleCount returns floor(horizon/step)+1, saturating at math.MaxInt when
// the ratio does not fit in an int.
func SampleCount(horizon, step float64) int {
	// 1e-9 absorbs division artifacts such as 0.3/0.1 = 2.9999999999999996.
	steps := math.Floor(horizon/step + 1e-9)
	switch {
	case math.IsNaN(steps) || steps < 0:
		return 1
	case steps >= math.MaxInt:
		return math.MaxInt
	}
	return int(steps) + 1
}

// With returns a validated copy of c with the named parameter replaced.
func (c Config) With(name string, value float64) (Config, error) {
	return c.Apply(map[string]float64{name: value})
}

// Apply replaces every named parameter and validates the result once, so
// related fields such as base_demand and production_rate can move together.
func (c Config) Apply(params map[string]float64) (Config, error) {
	out := c
	for name, value := range params {
		if err := out.set(name, value); err != nil {
			return Config{}, err
		}
	}
	return NewConfig(out)
}

func (c *Config) set(name string, value float64) error {
	switch name {
	case "initial_inventory":
		c.InitialInventory = value
	case "base_price":
		c.BasePrice = value
	case "production_rate":
		c.ProductionRate = value
	case "base_demand":
		c.BaseDemand = value
	case "popularity":
		c.Popularity = value
	case "fluctuation_amplitude_pct":
		c.FluctuationPct = value
	case "fluctuation_period_hours":
		c.FluctuationPeriod = value
	case "horizon_hours":
		c.Horizon = value
	case "step_hours":
		c.Step = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}

// Params returns the configuration keyed by parameter name.
func (c Config) Params() map[string]float64 {
	params := make(map[string]float64, 9)
	for _, p := range c.fields() {
		params[p.name] = p.value
	}
	return params
}

// ParamNames lists the names accepted by With, sorted.
func ParamNames() []string {
	names := make([]string, 0, 9)
	for _, p := range (Config{}).fields() {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

type namedValue struct {
	name  string
	value float64
}

func (c Config) fields() []namedValue {
	return []namedValue{
		{"initial_inventory", c.InitialInventory},
		{"base_price", c.BasePrice},
		{"production_rate", c.ProductionRate},
		{"base_demand", c.BaseDemand},
		{"popularity", c.Popularity},
		{"fluctuation_amplitude_pct", c.FluctuationPct},
		{"fluctuation_period_hours", c.FluctuationPeriod},
		{"horizon_hours", c.Horizon},
		{"step_hours", c.Step},
	}
}
