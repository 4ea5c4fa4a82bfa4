package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stockout/internal/analysis"
	"github.com/san-kum/stockout/internal/market"
	"github.com/san-kum/stockout/internal/viz"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "demand cycle spectrum and phase portrait of a run",
		Args:  cobra.NoArgs,
		RunE:  analyzeRun,
	}
	bindSimFlags(cmd)
	return cmd
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	res, err := simulate(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	flow := analysis.NetFlowSeries(res.Trajectory)
	if len(flow) < 4 {
		fmt.Fprintln(out, "run too short for spectral analysis")
		return nil
	}

	ps := analysis.PowerSpectrum(analysis.Pad(flow))
	if len(ps) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(viz.Downsample(ps[1:], 80),
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("net flow power spectrum"),
		))
		fmt.Fprintln(out)
	}

	if period, ok := analysis.DominantPeriod(flow, res.Config.Step); ok {
		fmt.Fprintf(out, "%s %s\n", viz.Label.Render("cycle"), viz.Value.Render(fmt.Sprintf("%.1f h", period)))
	} else {
		fmt.Fprintf(out, "%s %s\n", viz.Label.Render("cycle"), viz.Muted.Render("none"))
	}
	fmt.Fprintf(out, "%s %s\n\n", viz.Label.Render("configured"), viz.Value.Render(fmt.Sprintf("%.1f h", res.Config.FluctuationPeriod)))

	model := market.NewModel(res.Config)
	fmt.Fprintln(out, viz.Title.Render("inventory vs net flow"))
	fmt.Fprintln(out, viz.Panel.Render(analysis.PhaseASCII(analysis.Phase(res.Trajectory, model.NetFlow), 70, 18)))
	return nil
}
