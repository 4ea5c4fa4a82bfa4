package main

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/integrators"
	"github.com/san-kum/stockout/internal/report"
	"github.com/san-kum/stockout/internal/sim"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [stepper...]",
		Short: "compare integration schemes on the same item",
		RunE:  compareSteppers,
	}
	bindSimFlags(cmd)
	return cmd
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		names = integrators.Names()
	}

	ctx, cancel := signalContext()
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing steppers (step=%gh, horizon=%gh)\n\n", cfg.Step, cfg.Horizon)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "stepper\tsamples\tstock-out (h)\tfinal price\tmax |Δ| vs first\ttime (ms)\t")

	var ref *dynamo.Result
	for _, name := range names {
		s, err := sim.NewNamed(name, sim.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\t\t\t\t\t\n", name, err)
			continue
		}
		start := time.Now()
		res, err := s.Run(ctx, cfg)
		elapsed := time.Since(start)
		if err != nil {
			return err
		}
		if ref == nil {
			ref = res
		}

		stockout := "-"
		if res.Depleted() {
			stockout = fmt.Sprintf("%.1f", *res.StockoutHour)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t$%s\t%.3e\t%.2f\t\n",
			name, len(res.Trajectory), stockout,
			report.Money(res.FinalPrice).StringFixed(2),
			maxDeviation(ref.Trajectory, res.Trajectory),
			float64(elapsed.Microseconds())/1000)
	}
	return tw.Flush()
}

// maxDeviation compares levels over the common prefix of two trajectories.
func maxDeviation(a, b dynamo.Trajectory) float64 {
	n := min(len(a), len(b))
	worst := 0.0
	for i := 0; i < n; i++ {
		worst = math.Max(worst, math.Abs(a[i].Level-b[i].Level))
	}
	return worst
}
