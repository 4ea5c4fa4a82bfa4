package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stockout/internal/dynamo"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// Downsample keeps at most n evenly spaced values, always including the last.
func Downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	stride := float64(len(values)-1) / float64(n-1)
	for i := range out {
		out[i] = values[int(float64(i)*stride+0.5)]
	}
	return out
}

func PlotInventory(res *dynamo.Result) string {
	caption := fmt.Sprintf("inventory (units) over %.0f h", res.Duration())
	if res.Depleted() {
		caption = fmt.Sprintf("inventory (units), stock-out at %.1f h", *res.StockoutHour)
	}
	return plot(res.Trajectory.Levels(), caption, asciigraph.Red)
}

func PlotPrice(res *dynamo.Result) string {
	return plot(res.Prices, "price ($)", asciigraph.Green)
}

func plot(values []float64, caption string, color asciigraph.AnsiColor) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(Downsample(values, plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(color),
	)
}
