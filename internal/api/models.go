package api

import (
	"github.com/san-kum/stockout/internal/report"
)

// SimulateRequest selects a preset and overrides individual parameters by
// their snake_case names.
type SimulateRequest struct {
	Preset    string             `json:"preset"`
	Stepper   string             `json:"stepper"`
	Overrides map[string]float64 `json:"overrides"`
}

// SimulateResponse is the report document plus analysis of the run.
type SimulateResponse struct {
	report.Document
	DominantPeriodHours *float64 `json:"dominant_period_hours,omitempty"`
}

// SweepRequest varies one parameter. Values wins over From/To/Count.
type SweepRequest struct {
	SimulateRequest
	Param  string    `json:"param" binding:"required"`
	Values []float64 `json:"values"`
	From   float64   `json:"from"`
	To     float64   `json:"to"`
	Count  int       `json:"count"`
}

type SweepResponse struct {
	ID      string     `json:"id"`
	Stepper string     `json:"stepper"`
	Param   string     `json:"param"`
	Runs    []SweepRun `json:"runs"`
}

type SweepRun struct {
	Value        float64            `json:"value"`
	Summary      report.Summary     `json:"summary"`
	StockoutHour *float64           `json:"stockout_hour"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
}

type PresetInfo struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params"`
}

type PresetsResponse struct {
	Presets  []PresetInfo `json:"presets"`
	Steppers []string     `json:"steppers"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
	CodeUnknownPreset        = "UNKNOWN_PRESET"
	CodeUnknownStepper       = "UNKNOWN_STEPPER"
	CodeTimeout              = "TIMEOUT"
	CodeInternal             = "INTERNAL_ERROR"
)
