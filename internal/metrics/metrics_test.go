package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/mdsim/internal/forces"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
	"github.com/san-kum/mdsim/internal/simctx"
	"github.com/san-kum/mdsim/internal/units"
)

func newContext(t *testing.T, box md.Box) *simctx.Context {
	t.Helper()
	sys, positions := simctx.BuildLattice(8, box, 18)
	c := simctx.New(sys, forces.Ideal{}, platform.NewPlatform("Test"))
	if err := c.SetPeriodicBoxVectors(box[0], box[1], box[2]); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPositions(positions); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestVolumeAverages(t *testing.T) {
	v := NewVolume()
	v.Observe(newContext(t, md.NewCubicBox(2)))
	v.Observe(newContext(t, md.NewCubicBox(4)))

	if got, want := v.Value(), (8.0+64.0)/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("Value = %v, want %v", got, want)
	}
	v.Reset()
	if v.Value() != 0 {
		t.Errorf("Value after Reset = %v, want 0", v.Value())
	}
}

func TestDensity(t *testing.T) {
	d := NewDensity()
	d.Observe(newContext(t, md.NewCubicBox(2)))

	// 8 particles of 18 amu in 8 nm^3.
	want := 18.0 * units.DensityScale
	if got := d.Value(); math.Abs(got-want)/want > 1e-12 {
		t.Errorf("Value = %v, want %v", got, want)
	}
}

func TestLateralArea(t *testing.T) {
	l := NewLateralArea()
	l.Observe(newContext(t, md.NewBox(2, 3, 7)))

	if got := l.Value(); math.Abs(got-6) > 1e-12 {
		t.Errorf("Value = %v, want 6", got)
	}
}

func TestEmptyMetricsAreZero(t *testing.T) {
	for _, m := range []Metric{NewVolume(), NewDensity(), NewLateralArea()} {
		if m.Value() != 0 {
			t.Errorf("%s with no samples = %v, want 0", m.Name(), m.Value())
		}
	}
}

type fixedStats struct {
	attempted, accepted int
}

func (s fixedStats) Stats() (int, int) { return s.attempted, s.accepted }

func TestAcceptanceRate(t *testing.T) {
	a := NewAcceptanceRate(fixedStats{attempted: 40, accepted: 10})
	if got := a.Value(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Value = %v, want 0.25", got)
	}

	empty := NewAcceptanceRate(fixedStats{})
	if empty.Value() != 0 {
		t.Errorf("Value with no trials = %v, want 0", empty.Value())
	}
}
