// Package barostat implements the Monte Carlo membrane barostat.
//
// The controller samples a constant-pressure / constant-surface-tension
// ensemble by proposing random volume perturbations and accepting or
// rejecting them with the Metropolis criterion
//
//	w = dE + P*dV - gamma*dA - N*kT*ln(Vnew/V)
//
// where dE is the potential-energy change, P the pressure, gamma the
// surface tension, dA the lateral-area change and N the molecule count.
// Proposals with w <= 0 are always accepted; otherwise acceptance happens
// with probability exp(-w/kT).
//
// Coordinate scaling and restoration are delegated to whatever
// BarostatKernel the active platform supplied at Initialize. Move
// amplitudes adapt per axis toward a 25-75% acceptance window. A trial
// either commits cleanly or rolls back completely; partial scaling is never
// observable outside a tick.
package barostat
