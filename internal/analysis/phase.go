package analysis

import (
	"strings"

	"github.com/san-kum/stockout/internal/dynamo"
)

// PhasePoint pairs an inventory level with its net flow dI/dt.
type PhasePoint struct {
	Level   float64 `json:"inventory_level"`
	NetFlow float64 `json:"net_flow"`
}

// Phase evaluates flow along the trajectory.
func Phase(tr dynamo.Trajectory, flow dynamo.FlowFunc) []PhasePoint {
	out := make([]PhasePoint, len(tr))
	for i, s := range tr {
		out[i] = PhasePoint{Level: s.Level, NetFlow: flow(s.Level, s.Time)}
	}
	return out
}

// PhaseASCII renders points with level on the x axis and net flow on the y
// axis. The zero-flow line is drawn when it is in range.
func PhaseASCII(points []PhasePoint, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].Level, points[0].Level
	minY, maxY := points[0].NetFlow, points[0].NetFlow
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.Level), max(maxX, p.Level)
		minY, maxY = min(minY, p.NetFlow), max(maxY, p.NetFlow)
	}
	// always show the zero-flow line
	minY, maxY = min(minY, 0), max(maxY, 0)
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}

	zero := height - 1 - int((0-minY)/spanY*float64(height-1))
	for c := 0; c < width; c++ {
		grid[zero][c] = '─'
	}

	for _, p := range points {
		c := int((p.Level - minX) / spanX * float64(width-1))
		r := height - 1 - int((p.NetFlow-minY)/spanY*float64(height-1))
		grid[r][c] = '•'
	}

	var sb strings.Builder
	for r, row := range grid {
		sb.WriteString(string(row))
		if r < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
