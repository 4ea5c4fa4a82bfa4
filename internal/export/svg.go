// Package export renders simulation results to static image formats.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/stockout/internal/dynamo"
)

const (
	colorInventory = "#1f77b4"
	colorPrice     = "#2ca02c"
	colorStockout  = "#d62728"
	margin         = 50.0
)

type axis struct {
	lo, hi float64
}

func newAxis(values []float64) axis {
	a := axis{lo: values[0], hi: values[0]}
	for _, v := range values[1:] {
		a.lo, a.hi = min(a.lo, v), max(a.hi, v)
	}
	span := a.hi - a.lo
	if span == 0 {
		span = 1
	}
	a.lo -= span * 0.05
	a.hi += span * 0.05
	return a
}

func (a axis) frac(v float64) float64 { return (v - a.lo) / (a.hi - a.lo) }

// ChartSVG draws inventory against the left axis and price against the right
// axis, with a dashed vertical marker at the stock-out hour. It returns an
// empty string when the result has no samples.
func ChartSVG(res *dynamo.Result, width, height int) string {
	if res == nil || len(res.Trajectory) == 0 {
		return ""
	}

	times := res.Trajectory.Times()
	tAxis := axis{lo: 0, hi: times[len(times)-1]}
	if tAxis.hi == 0 {
		tAxis.hi = 1
	}
	levelAxis := newAxis(res.Trajectory.Levels())
	priceAxis := newAxis(res.Prices)

	w, h := float64(width), float64(height)
	plotW, plotH := w-2*margin, h-2*margin
	px := func(t float64) float64 { return margin + tAxis.frac(t)*plotW }
	py := func(a axis, v float64) float64 { return h - margin - a.frac(v)*plotH }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#cccccc"/>
`, width, height, width, height, margin, margin, plotW, plotH)

	writeLine := func(id, color string, values []float64, a axis) {
		fmt.Fprintf(&sb, `<polyline id="%s" fill="none" stroke="%s" stroke-width="1.5" points="`, id, color)
		for i, v := range values {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", px(times[i]), py(a, v))
		}
		sb.WriteString("\"/>\n")
	}
	writeLine("inventory", colorInventory, res.Trajectory.Levels(), levelAxis)
	writeLine("price", colorPrice, res.Prices, priceAxis)

	if res.StockoutHour != nil {
		x := px(*res.StockoutHour)
		fmt.Fprintf(&sb, `<line id="stockout" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="6,4"/>
<text x="%.1f" y="%.1f" fill="%s" font-size="11">stock-out %.1fh</text>
`, x, margin, x, h-margin, colorStockout, x+4, margin+12, colorStockout, *res.StockoutHour)
	}

	fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-size="11">%.0f</text>
<text x="%.1f" y="%.1f" fill="%s" font-size="11">%.0f</text>
<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="end">$%.2f</text>
<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="end">$%.2f</text>
<text x="%.1f" y="%.1f" font-size="11" text-anchor="middle">time (hours)</text>
</svg>
`,
		4.0, margin+4, colorInventory, levelAxis.hi,
		4.0, h-margin, colorInventory, levelAxis.lo,
		w-4, margin+4, colorPrice, priceAxis.hi,
		w-4, h-margin, colorPrice, priceAxis.lo,
		w/2, h-margin/3)

	return sb.String()
}
