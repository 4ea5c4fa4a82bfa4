package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/integrators"
)

const (
	EnvAddr     = "STOCKOUT_ADDR"
	EnvLogLevel = "STOCKOUT_LOG_LEVEL"
	DefaultAddr = ":8080"
)

// Config is the on-disk configuration shape (YAML or TOML).
type Config struct {
	Stepper   string          `yaml:"stepper" toml:"stepper"`
	Inventory InventoryConfig `yaml:"inventory" toml:"inventory"`
	Pricing   PricingConfig   `yaml:"pricing" toml:"pricing"`
	Demand    DemandConfig    `yaml:"demand" toml:"demand"`
	Run       RunConfig       `yaml:"run" toml:"run"`
}

type InventoryConfig struct {
	Initial        float64 `yaml:"initial" toml:"initial"`
	ProductionRate float64 `yaml:"production_rate" toml:"production_rate"`
}

type PricingConfig struct {
	BasePrice float64 `yaml:"base_price" toml:"base_price"`
}

type DemandConfig struct {
	Base              float64 `yaml:"base" toml:"base"`
	Popularity        float64 `yaml:"popularity" toml:"popularity"`
	FluctuationPct    float64 `yaml:"fluctuation_pct" toml:"fluctuation_pct"`
	FluctuationPeriod float64 `yaml:"fluctuation_period_hours" toml:"fluctuation_period_hours"`
}

type RunConfig struct {
	HorizonHours float64 `yaml:"horizon_hours" toml:"horizon_hours"`
	StepHours    float64 `yaml:"step_hours" toml:"step_hours"`
}

func DefaultConfig() *Config {
	return FromSimulation(integrators.Default, dynamo.DefaultConfig())
}

// FromSimulation converts simulation parameters to the file shape.
func FromSimulation(stepper string, c dynamo.Config) *Config {
	return &Config{
		Stepper: stepper,
		Inventory: InventoryConfig{
			Initial:        c.InitialInventory,
			ProductionRate: c.ProductionRate,
		},
		Pricing: PricingConfig{BasePrice: c.BasePrice},
		Demand: DemandConfig{
			Base:              c.BaseDemand,
			Popularity:        c.Popularity,
			FluctuationPct:    c.FluctuationPct,
			FluctuationPeriod: c.FluctuationPeriod,
		},
		Run: RunConfig{
			HorizonHours: c.Horizon,
			StepHours:    c.Step,
		},
	}
}

// Simulation returns the validated simulation parameters.
func (c *Config) Simulation() (dynamo.Config, error) {
	return dynamo.NewConfig(c.Raw())
}

// Raw returns the simulation parameters without validating them.
func (c *Config) Raw() dynamo.Config {
	return dynamo.Config{
		InitialInventory:  c.Inventory.Initial,
		BasePrice:         c.Pricing.BasePrice,
		ProductionRate:    c.Inventory.ProductionRate,
		BaseDemand:        c.Demand.Base,
		Popularity:        c.Demand.Popularity,
		FluctuationPct:    c.Demand.FluctuationPct,
		FluctuationPeriod: c.Demand.FluctuationPeriod,
		Horizon:           c.Run.HorizonHours,
		Step:              c.Run.StepHours,
	}
}

// Load reads a config file over the defaults. Files ending in .toml are
// parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a config file on top of a copy of base. Fields absent from
// the file keep the value from base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := new(Config)
	*cfg = *base
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Addr returns the serve address from the environment.
func Addr() string {
	if addr := os.Getenv(EnvAddr); addr != "" {
		return addr
	}
	return DefaultAddr
}
