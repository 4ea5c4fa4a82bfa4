package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/export"
	"github.com/san-kum/stockout/internal/report"
	"github.com/san-kum/stockout/internal/sim"
	"github.com/san-kum/stockout/internal/viz"
)

var (
	outFile string
	svgFile string
	svgSize []int
	jsonOut bool
	noPlot  bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one item until stock-out or the horizon",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	bindSimFlags(cmd)
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write samples to a .csv or .json file")
	cmd.Flags().StringVar(&svgFile, "svg", "", "write an inventory/price chart to an .svg file")
	cmd.Flags().IntSliceVar(&svgSize, "svg-size", []int{960, 480}, "svg width,height")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the JSON report to stdout only")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")
	return cmd
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// simulate resolves parameters and runs one simulation.
func simulate(cmd *cobra.Command) (*dynamo.Result, error) {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	s, err := sim.NewNamed(name, sim.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	ctx, cancel := signalContext()
	defer cancel()
	return s.Run(ctx, cfg)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	start := time.Now()
	res, err := simulate(cmd)
	if err != nil {
		return err
	}
	logger.Debug("run complete", "elapsed", time.Since(start), "samples", len(res.Trajectory))

	if jsonOut {
		return report.WriteJSON(cmd.OutOrStdout(), res)
	}

	out := cmd.OutOrStdout()
	summary := report.Summarize(res)
	fmt.Fprintln(out, viz.Title.Render(fmt.Sprintf("%s run, %d samples", res.Stepper, len(res.Trajectory))))
	fmt.Fprintln(out, viz.SummaryTable(res))
	fmt.Fprintln(out, viz.Status(summary.Depleted, summary.Status()))
	if h, ok := res.InterpolatedStockoutHour(); ok {
		fmt.Fprintln(out, viz.Muted.Render(fmt.Sprintf("interpolated zero crossing: %.2f h", h)))
	}

	if !noPlot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotInventory(res))
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotPrice(res))
	}

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.MetricsTable(names, res.Metrics))

	if outFile != "" {
		if err := report.ExportFile(outFile, res); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Info("exported samples", "path", outFile)
	}
	if svgFile != "" {
		if !strings.HasSuffix(strings.ToLower(svgFile), ".svg") {
			return fmt.Errorf("svg output must end in .svg: %s", svgFile)
		}
		if len(svgSize) != 2 || svgSize[0] < 200 || svgSize[1] < 150 {
			return fmt.Errorf("svg-size must be width,height of at least 200,150")
		}
		chart := export.ChartSVG(res, svgSize[0], svgSize[1])
		if err := os.WriteFile(svgFile, []byte(chart), 0644); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", svgFile)
	}
	return nil
}
