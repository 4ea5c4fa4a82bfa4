// Package viz renders inventory runs in the terminal.
//
//   - [PlotInventory] and [PlotPrice]: asciigraph line charts
//   - [SummaryTable] and [SweepTable]: lipgloss tables
//   - [Replay]: Bubble Tea program stepping through a finished run
//
// # Replay Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from hour zero
//	[ ]   - Step back/forward while paused
//	+ -   - Change playback speed
//	?     - Toggle help
//	Q     - Quit
package viz
