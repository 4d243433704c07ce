// Package metrics provides running observables sampled from the simulation
// context once per tick.
package metrics

import (
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
	"github.com/san-kum/mdsim/internal/units"
)

type Metric interface {
	Name() string
	Observe(c platform.Context)
	Value() float64
	Reset()
}

// Volume averages the box volume in nm^3.
type Volume struct {
	samples int
	total   float64
}

func NewVolume() *Volume { return &Volume{} }

func (v *Volume) Name() string { return "volume" }

func (v *Volume) Observe(c platform.Context) {
	a, b, cv := c.PeriodicBoxVectors()
	v.total += md.Box{a, b, cv}.Volume()
	v.samples++
}

func (v *Volume) Value() float64 {
	if v.samples == 0 {
		return 0
	}
	return v.total / float64(v.samples)
}

func (v *Volume) Reset() {
	v.samples = 0
	v.total = 0
}

// Density averages the mass density in g/cm^3.
type Density struct {
	samples int
	total   float64
}

func NewDensity() *Density { return &Density{} }

func (d *Density) Name() string { return "density" }

func (d *Density) Observe(c platform.Context) {
	a, b, cv := c.PeriodicBoxVectors()
	volume := md.Box{a, b, cv}.Volume()
	if volume <= 0 {
		return
	}
	d.total += c.System().TotalMass() / volume * units.DensityScale
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.total / float64(d.samples)
}

func (d *Density) Reset() {
	d.samples = 0
	d.total = 0
}

// LateralArea averages the box cross-section in the membrane plane in nm^2.
type LateralArea struct {
	samples int
	total   float64
}

func NewLateralArea() *LateralArea { return &LateralArea{} }

func (l *LateralArea) Name() string { return "lateral_area" }

func (l *LateralArea) Observe(c platform.Context) {
	a, b, _ := c.PeriodicBoxVectors()
	l.total += a[0] * b[1]
	l.samples++
}

func (l *LateralArea) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.total / float64(l.samples)
}

func (l *LateralArea) Reset() {
	l.samples = 0
	l.total = 0
}

// TrialStats reports cumulative counts; Stats on the barostat controller
// satisfies it.
type TrialStats interface {
	Stats() (attempted, accepted int)
}

// AcceptanceRate reports the fraction of accepted trials. It reads the
// controller's cumulative counters, so Reset is a no-op.
type AcceptanceRate struct {
	stats TrialStats
}

func NewAcceptanceRate(stats TrialStats) *AcceptanceRate {
	return &AcceptanceRate{stats: stats}
}

func (a *AcceptanceRate) Name() string { return "acceptance_rate" }

func (a *AcceptanceRate) Observe(c platform.Context) {}

func (a *AcceptanceRate) Value() float64 {
	attempted, accepted := a.stats.Stats()
	if attempted == 0 {
		return 0
	}
	return float64(accepted) / float64(attempted)
}

func (a *AcceptanceRate) Reset() {}
