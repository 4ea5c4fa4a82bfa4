package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/config"
	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/integrators"
)

var (
	preset     string
	configFile string
	stepper    string

	initialInventory  float64
	basePrice         float64
	productionRate    float64
	baseDemand        float64
	popularity        float64
	fluctuationPct    float64
	fluctuationPeriod float64
	horizon           float64
	step              float64
)

// paramFlags maps each flag to the parameter it overrides.
var paramFlags = []struct {
	flag, param string
	dst         *float64
	usage       string
}{
	{"initial-inventory", "initial_inventory", &initialInventory, "initial stock (units)"},
	{"base-price", "base_price", &basePrice, "base price ($)"},
	{"production-rate", "production_rate", &productionRate, "production (units/hour)"},
	{"base-demand", "base_demand", &baseDemand, "base demand (units/hour)"},
	{"popularity", "popularity", &popularity, "popularity (1-10)"},
	{"fluctuation-pct", "fluctuation_amplitude_pct", &fluctuationPct, "demand fluctuation amplitude (%)"},
	{"fluctuation-period", "fluctuation_period_hours", &fluctuationPeriod, "demand fluctuation period (hours)"},
	{"horizon", "horizon_hours", &horizon, "simulated time (hours)"},
	{"step", "step_hours", &step, "integration step (hours)"},
}

func bindSimFlags(cmd *cobra.Command) {
	def := dynamo.DefaultConfig().Params()
	for _, p := range paramFlags {
		cmd.Flags().Float64Var(p.dst, p.flag, def[p.param], p.usage)
	}
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (yaml or toml)")
	cmd.Flags().StringVar(&stepper, "stepper", integrators.Default, "integration scheme (rk4, euler)")
}

// resolveConfig applies defaults, then the preset, then the config file,
// then any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (dynamo.Config, string, error) {
	base := dynamo.DefaultConfig()
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return dynamo.Config{}, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		base = p
	}

	name := integrators.Default
	if configFile != "" {
		f, err := config.LoadOver(configFile, config.FromSimulation(name, base))
		if err != nil {
			return dynamo.Config{}, "", fmt.Errorf("failed to load config: %w", err)
		}
		base = f.Raw()
		if f.Stepper != "" {
			name = f.Stepper
		}
	}

	overrides := make(map[string]float64)
	for _, p := range paramFlags {
		if cmd.Flags().Changed(p.flag) {
			overrides[p.param] = *p.dst
		}
	}
	if cmd.Flags().Changed("stepper") {
		name = stepper
	}

	cfg, err := base.Apply(overrides)
	if err != nil {
		return dynamo.Config{}, "", err
	}
	if _, err := integrators.Lookup(name); err != nil {
		return dynamo.Config{}, "", err
	}
	return cfg, name, nil
}
