package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/stockout/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stepper != "rk4" {
		t.Errorf("expected stepper rk4, got %s", cfg.Stepper)
	}
	sim, err := cfg.Simulation()
	if err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if sim != dynamo.DefaultConfig() {
		t.Errorf("default file config does not round-trip: %+v", sim)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.yaml")
	data := `
stepper: euler
inventory:
  initial: 400
demand:
  popularity: 8
run:
  horizon_hours: 168
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Stepper != "euler" {
		t.Errorf("expected stepper euler, got %s", cfg.Stepper)
	}

	sim, err := cfg.Simulation()
	if err != nil {
		t.Fatalf("simulation config invalid: %v", err)
	}
	if sim.InitialInventory != 400 || sim.Popularity != 8 || sim.Horizon != 168 {
		t.Errorf("overrides not applied: %+v", sim)
	}
	if sim.BasePrice != 50 || sim.Step != 1 {
		t.Errorf("defaults not kept: %+v", sim)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.toml")
	data := `
stepper = "rk4"

[pricing]
base_price = 75.5

[demand]
fluctuation_pct = 30
fluctuation_period_hours = 168
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Pricing.BasePrice != 75.5 {
		t.Errorf("expected base price 75.5, got %g", cfg.Pricing.BasePrice)
	}
	if cfg.Demand.FluctuationPct != 30 || cfg.Demand.FluctuationPeriod != 168 {
		t.Errorf("demand section not parsed: %+v", cfg.Demand)
	}
	if cfg.Inventory.Initial != 1000 {
		t.Errorf("expected default inventory, got %g", cfg.Inventory.Initial)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := FromSimulation("euler", Presets["premium"])

			if err := Save(path, want); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if *got != *want {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("inventory: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSimulationRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Demand.Base = 99

	if _, err := cfg.Simulation(); !errors.Is(err, dynamo.ErrInvalidConfiguration) {
		t.Errorf("expected invalid configuration, got %v", err)
	}
}

func TestAddr(t *testing.T) {
	t.Setenv(EnvAddr, "")
	if Addr() != DefaultAddr {
		t.Errorf("expected %s, got %s", DefaultAddr, Addr())
	}
	t.Setenv(EnvAddr, "127.0.0.1:9090")
	if Addr() != "127.0.0.1:9090" {
		t.Errorf("env override ignored: %s", Addr())
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg, ok := GetPreset(name)
		if !ok {
			t.Fatalf("listed preset %s not found", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected missing preset")
	}
}

func TestLoadOverKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("pricing:\n  base_price: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := FromSimulation("euler", Presets["bestseller"])
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Pricing.BasePrice != 99 {
		t.Errorf("expected file value 99, got %g", cfg.Pricing.BasePrice)
	}
	if cfg.Demand.Popularity != 10 || cfg.Stepper != "euler" {
		t.Errorf("base values lost: %+v", cfg)
	}
	if base.Pricing.BasePrice != 50 {
		t.Error("LoadOver mutated its base")
	}
}

func TestRawSkipsValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Demand.Popularity = 42

	if cfg.Raw().Popularity != 42 {
		t.Error("Raw should pass values through")
	}
	if _, err := cfg.Simulation(); err == nil {
		t.Error("Simulation should validate")
	}
}
