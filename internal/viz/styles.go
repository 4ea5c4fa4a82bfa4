package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899")).
		Width(12)

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Healthy = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	Depleted = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Status renders a run outcome in green or red.
func Status(depleted bool, text string) string {
	if depleted {
		return Depleted.Render(text)
	}
	return Healthy.Render(text)
}

// StockBar renders level as a share of capacity. Low stock turns red.
func StockBar(level, capacity float64, width int) string {
	ratio := 0.0
	if capacity > 0 {
		ratio = level / capacity
	}
	ratio = max(0, min(1, ratio))
	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case ratio > 0.5:
		return Healthy.Render(bar)
	case ratio > 0.2:
		return Warning.Render(bar)
	default:
		return Depleted.Render(bar)
	}
}

// Sparkline compresses values into one line of block characters.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	values = Downsample(values, width)

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		out[i] = blocks[idx]
	}
	return string(out)
}
