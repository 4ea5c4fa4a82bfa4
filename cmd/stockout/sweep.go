package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/sim"
	"github.com/san-kum/stockout/internal/viz"
)

// maxSweepValues bounds --count before any values are generated.
const maxSweepValues = 10_000

var (
	sweepParam  string
	sweepValues []float64
	sweepFrom   float64
	sweepTo     float64
	sweepCount  int
	workers     int
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "run one simulation per value of a parameter",
		Example: `  stockout sweep --param popularity --from 1 --to 10 --count 10
  stockout sweep --preset premium --param base_price --values 80,120,160`,
		Args: cobra.NoArgs,
		RunE: runSweep,
	}
	bindSimFlags(cmd)
	cmd.Flags().StringVar(&sweepParam, "param", "popularity", "parameter to vary ("+strings.Join(dynamo.ParamNames(), ", ")+")")
	cmd.Flags().Float64SliceVar(&sweepValues, "values", nil, "explicit values")
	cmd.Flags().Float64Var(&sweepFrom, "from", 1, "first value")
	cmd.Flags().Float64Var(&sweepTo, "to", 10, "last value")
	cmd.Flags().IntVar(&sweepCount, "count", 10, "number of evenly spaced values")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel runs (0 = GOMAXPROCS)")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	base, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	values := sweepValues
	if len(values) == 0 {
		if sweepCount > maxSweepValues {
			return fmt.Errorf("--count %d exceeds %d", sweepCount, maxSweepValues)
		}
		values = sim.Range(sweepFrom, sweepTo, sweepCount)
	}
	if len(values) == 0 {
		return fmt.Errorf("no sweep values")
	}

	variants, err := sim.Variants(base, sweepParam, values)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	results, err := sim.Sweep(ctx, name, variants, workers)
	if err != nil {
		return err
	}

	logger.Debug("sweep complete", "param", sweepParam, "runs", len(results))
	fmt.Fprintln(cmd.OutOrStdout(), viz.SweepTable(sweepParam, values, results))
	return nil
}
