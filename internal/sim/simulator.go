package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/integrators"
	"github.com/san-kum/stockout/internal/market"
	"github.com/san-kum/stockout/internal/metrics"
)

// Simulator runs inventory simulations with one stepper.
//
// A Simulator keeps metric accumulators between runs and must not be shared
// by concurrent goroutines. Use Sweep or one Simulator per goroutine.
type Simulator struct {
	stepper     dynamo.Stepper
	stepperName string
	metrics     []metrics.Metric
	logger      *slog.Logger
}

type Option func(*Simulator)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStepperName labels results produced by a custom stepper.
func WithStepperName(name string) Option {
	return func(s *Simulator) { s.stepperName = name }
}

func New(stepper dynamo.Stepper, opts ...Option) *Simulator {
	s := &Simulator{
		stepper:     stepper,
		stepperName: integrators.Default,
		metrics:     make([]metrics.Metric, 0),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewNamed builds a Simulator for a registered stepper with the default metrics.
func NewNamed(stepper string, opts ...Option) (*Simulator, error) {
	integ, err := integrators.Lookup(stepper)
	if err != nil {
		return nil, err
	}
	if stepper == "" {
		stepper = integrators.Default
	}
	s := New(integ, append([]Option{WithStepperName(stepper)}, opts...)...)
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	return s, nil
}

func (s *Simulator) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }

// Run validates cfg, integrates the inventory ODE and prices the result.
// An invalid configuration fails before any integration work. A canceled
// context yields a nil Result and the context error.
func (s *Simulator) Run(ctx context.Context, cfg dynamo.Config) (*dynamo.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := market.NewModel(cfg)
	traj, err := integrators.Integrate(ctx, s.stepper, model.NetFlow, cfg.InitialInventory, cfg.Horizon, cfg.Step)
	if err != nil {
		return nil, fmt.Errorf("simulation interrupted after %d samples: %w", len(traj), err)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	prices := make([]float64, len(traj))
	for i, sample := range traj {
		prices[i] = model.Price(sample.Level)
		for _, m := range s.metrics {
			m.Observe(sample, prices[i])
		}
	}

	result := &dynamo.Result{
		Config:        cfg,
		Stepper:       s.stepperName,
		Trajectory:    traj,
		Prices:        prices,
		StockoutIndex: traj.StockoutIndex(),
		FinalPrice:    prices[len(prices)-1],
		Metrics:       make(map[string]float64, len(s.metrics)),
	}
	if result.StockoutIndex >= 0 {
		hour := traj[result.StockoutIndex].Time
		result.StockoutHour = &hour
		result.FinalPrice = prices[result.StockoutIndex]
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Debug("simulation finished",
		"stepper", s.stepperName,
		"samples", len(traj),
		"depleted", result.Depleted(),
		"final_price", result.FinalPrice,
	)

	return result, nil
}

// Run simulates cfg with RK4 and the default metrics.
func Run(ctx context.Context, cfg dynamo.Config) (*dynamo.Result, error) {
	s, err := NewNamed(integrators.Default)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, cfg)
}
