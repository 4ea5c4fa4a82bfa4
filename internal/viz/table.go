package viz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/report"
)

var (
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")).Padding(0, 1)
	cell       = lipgloss.NewStyle().Padding(0, 1)
	borderTint = lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderTint).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return cell
		})
}

// SummaryTable renders the summary row of one run.
func SummaryTable(res *dynamo.Result) string {
	return newTable(report.Headers()...).
		Row(report.Summarize(res).Row()...).
		Render()
}

// SweepTable renders one row per sweep run. values[i] labels results[i].
func SweepTable(param string, values []float64, results []*dynamo.Result) string {
	t := newTable(append([]string{param}, report.Headers()...)...)
	for i, res := range results {
		label := strconv.FormatFloat(values[i], 'g', 6, 64)
		t.Row(append([]string{label}, report.Summarize(res).Row()...)...)
	}
	return t.Render()
}

// MetricsTable renders the metrics of a run in name order.
func MetricsTable(names []string, m map[string]float64) string {
	t := newTable("metric", "value")
	for _, name := range names {
		t.Row(name, fmt.Sprintf("%.4f", m[name]))
	}
	return t.Render()
}
