// Package analysis inspects simulated inventory trajectories.
//
//   - [FFT] and [PowerSpectrum]: radix-2 spectrum of a sampled series
//   - [DominantPeriod]: strongest demand cycle in a net-flow series
//   - [Phase]: level against net flow, with an ASCII rendering
//
// A run with a 24 hour fluctuation period shows up as a spectral peak near
// 24 hours:
//
//	flow := analysis.NetFlowSeries(res.Trajectory)
//	period, ok := analysis.DominantPeriod(flow, res.Config.Step)
package analysis
