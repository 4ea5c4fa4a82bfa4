package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/san-kum/stockout/internal/analysis"
	"github.com/san-kum/stockout/internal/config"
	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/integrators"
	"github.com/san-kum/stockout/internal/report"
	"github.com/san-kum/stockout/internal/sim"
)

type Handler struct {
	logger  *slog.Logger
	workers int
}

// ListPresets handles GET /api/v1/presets
func (h *Handler) ListPresets(c *gin.Context) {
	names := config.ListPresets()
	resp := PresetsResponse{
		Presets:  make([]PresetInfo, 0, len(names)),
		Steppers: integrators.Names(),
	}
	for _, name := range names {
		cfg, _ := config.GetPreset(name)
		resp.Presets = append(resp.Presets, PresetInfo{Name: name, Params: cfg.Params()})
	}
	c.JSON(http.StatusOK, resp)
}

// Simulate handles POST /api/v1/simulate
func (h *Handler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	cfg, ok := resolve(c, req)
	if !ok {
		return
	}

	s, err := sim.NewNamed(req.Stepper, sim.WithLogger(h.logger))
	if err != nil {
		fail(c, err)
		return
	}
	res, err := s.Run(c.Request.Context(), cfg)
	if err != nil {
		fail(c, err)
		return
	}

	resp := SimulateResponse{Document: report.NewDocument(uuid.NewString(), res)}
	if period, ok := analysis.DominantPeriod(analysis.NetFlowSeries(res.Trajectory), cfg.Step); ok {
		resp.DominantPeriodHours = &period
	}
	h.logger.Debug("simulate", "id", resp.ID, "depleted", res.Depleted())
	c.JSON(http.StatusOK, resp)
}

// Sweep handles POST /api/v1/sweep
func (h *Handler) Sweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	cfg, ok := resolve(c, req.SimulateRequest)
	if !ok {
		return
	}

	values := req.Values
	if len(values) == 0 {
		if req.Count > MaxSweepRuns {
			abort(c, http.StatusBadRequest, CodeInvalidRequest,
				fmt.Errorf("sweep count %d exceeds %d runs", req.Count, MaxSweepRuns))
			return
		}
		values = sim.Range(req.From, req.To, req.Count)
	}
	if len(values) == 0 || len(values) > MaxSweepRuns {
		abort(c, http.StatusBadRequest, CodeInvalidRequest,
			fmt.Errorf("sweep needs between 1 and %d values, got %d", MaxSweepRuns, len(values)))
		return
	}

	variants, err := sim.Variants(cfg, req.Param, values)
	if err != nil {
		fail(c, err)
		return
	}
	results, err := sim.Sweep(c.Request.Context(), req.Stepper, variants, h.workers)
	if err != nil {
		fail(c, err)
		return
	}

	stepper := req.Stepper
	if stepper == "" {
		stepper = integrators.Default
	}
	resp := SweepResponse{
		ID:      uuid.NewString(),
		Stepper: stepper,
		Param:   req.Param,
		Runs:    make([]SweepRun, len(results)),
	}
	for i, res := range results {
		resp.Runs[i] = SweepRun{
			Value:        variants[i].Value,
			Summary:      report.Summarize(res),
			StockoutHour: res.StockoutHour,
			Metrics:      res.Metrics,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// resolve builds the validated configuration for req, writing the error
// response itself when it fails.
func resolve(c *gin.Context, req SimulateRequest) (dynamo.Config, bool) {
	name := req.Preset
	if name == "" {
		name = "default"
	}
	base, ok := config.GetPreset(name)
	if !ok {
		abort(c, http.StatusBadRequest, CodeUnknownPreset, fmt.Errorf("unknown preset %q", name))
		return dynamo.Config{}, false
	}
	cfg, err := base.Apply(req.Overrides)
	if err != nil {
		fail(c, err)
		return dynamo.Config{}, false
	}
	if n := cfg.Steps(); n > MaxSamples {
		abort(c, http.StatusBadRequest, CodeInvalidRequest,
			fmt.Errorf("run needs %d samples, limit is %d", n, MaxSamples))
		return dynamo.Config{}, false
	}
	return cfg, true
}

func fail(c *gin.Context, err error) {
	var cerr *dynamo.ConfigError
	switch {
	case errors.As(err, &cerr):
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    CodeInvalidConfiguration,
				Message: err.Error(),
				Details: map[string]any{"field": cerr.Field, "value": cerr.Value, "rule": cerr.Rule},
			},
		})
	case errors.Is(err, dynamo.ErrInvalidConfiguration), errors.Is(err, dynamo.ErrUnknownParameter):
		abort(c, http.StatusBadRequest, CodeInvalidConfiguration, err)
	case errors.Is(err, dynamo.ErrUnknownStepper):
		abort(c, http.StatusBadRequest, CodeUnknownStepper, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		abort(c, http.StatusGatewayTimeout, CodeTimeout, err)
	default:
		abort(c, http.StatusInternalServerError, CodeInternal, err)
	}
}

func abort(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: err.Error()},
	})
}
