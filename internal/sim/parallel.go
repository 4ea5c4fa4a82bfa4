package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/san-kum/stockout/internal/dynamo"
	"golang.org/x/sync/errgroup"
)

// Variant is one configuration of a sweep.
type Variant struct {
	Param  string
	Value  float64
	Config dynamo.Config
}

// Variants expands base into one validated configuration per value.
func Variants(base dynamo.Config, param string, values []float64) ([]Variant, error) {
	out := make([]Variant, 0, len(values))
	for _, v := range values {
		cfg, err := base.With(param, v)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", param, v, err)
		}
		out = append(out, Variant{Param: param, Value: v, Config: cfg})
	}
	return out, nil
}

// Sweep runs every variant with its own Simulator and returns results in
// input order. workers <= 0 uses GOMAXPROCS.
func Sweep(ctx context.Context, stepper string, variants []Variant, workers int) ([]*dynamo.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*dynamo.Result, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range variants {
		g.Go(func() error {
			s, err := NewNamed(stepper)
			if err != nil {
				return err
			}
			res, err := s.Run(ctx, v.Config)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", v.Param, v.Value, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Range returns count evenly spaced values from lo to hi inclusive.
func Range(lo, hi float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{lo}
	}
	out := make([]float64, count)
	step := (hi - lo) / float64(count-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[count-1] = hi
	return out
}
