// Package analysis provides statistics over recorded volume traces.
//
// The package characterizes a barostat run after the fact:
//
//   - [TraceStats]: mean, standard deviation and extrema of a trace
//   - [Autocorrelation]: normalized autocorrelation function
//   - [IntegratedCorrelationTime]: effective decorrelation time in ticks
//   - [BlockStandardError]: standard error from block averaging
//   - [PowerSpectrum]: fluctuation spectrum of the trace
//
// # Equilibration
//
// A trace whose first-half and second-half means differ by more than a few
// standard errors has likely not equilibrated:
//
//	stats := analysis.TraceStats(volumes)
//	tau := analysis.IntegratedCorrelationTime(volumes)
package analysis
