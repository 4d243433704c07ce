package reference

import (
	"math"
	"testing"

	"github.com/san-kum/mdsim/internal/forces"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
	"github.com/san-kum/mdsim/internal/simctx"
)

func newTestContext(t *testing.T) (*simctx.Context, platform.BarostatKernel) {
	t.Helper()
	reg := platform.NewRegistry()
	Register(reg)
	p, err := reg.PlatformByName(Name)
	if err != nil {
		t.Fatal(err)
	}

	sys := md.NewSystem()
	for i := 0; i < 3; i++ {
		sys.AddParticle(18)
	}
	sys.AddMolecule([]int{0, 1})
	sys.AddMolecule([]int{2})

	c := simctx.New(sys, forces.Ideal{}, p)
	box := md.NewCubicBox(4)
	if err := c.SetPeriodicBoxVectors(box[0], box[1], box[2]); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPositions([]md.Vec3{
		{1, 1, 1},
		{1.2, 1, 1},
		{3, 3, 3},
	}); err != nil {
		t.Fatal(err)
	}

	k, err := p.CreateKernel(platform.ApplyMonteCarloBarostatKernel, c)
	if err != nil {
		t.Fatal(err)
	}
	bk := k.(platform.BarostatKernel)
	if err := bk.Initialize(sys); err != nil {
		t.Fatal(err)
	}
	return c, bk
}

func TestScaleRestoreRoundTrip(t *testing.T) {
	c, k := newTestContext(t)
	before := make([]md.Vec3, len(c.Positions()))
	copy(before, c.Positions())

	if err := k.ScaleCoordinates(c, 1.1, 0.9, 1.05); err != nil {
		t.Fatal(err)
	}
	if err := k.RestoreCoordinates(c); err != nil {
		t.Fatal(err)
	}

	for i, p := range c.Positions() {
		if p != before[i] {
			t.Fatalf("position %d = %v, want bit-identical %v", i, p, before[i])
		}
	}
}

func TestScalingMovesMoleculesRigidly(t *testing.T) {
	c, k := newTestContext(t)
	pos := c.Positions()
	bondBefore := pos[1].Sub(pos[0]).Norm()

	if err := k.ScaleCoordinates(c, 1.2, 0.8, 1.1); err != nil {
		t.Fatal(err)
	}

	bondAfter := pos[1].Sub(pos[0]).Norm()
	if math.Abs(bondAfter-bondBefore) > 1e-12 {
		t.Errorf("intramolecular distance changed: %v -> %v", bondBefore, bondAfter)
	}
}

func TestScalingMovesMoleculeCenters(t *testing.T) {
	c, k := newTestContext(t)
	if err := k.ScaleCoordinates(c, 2, 1, 1); err != nil {
		t.Fatal(err)
	}

	// The single-particle molecule at x=3 doubles its x coordinate.
	got := c.Positions()[2]
	want := md.Vec3{6, 3, 3}
	if got != want {
		t.Errorf("scaled position = %v, want %v", got, want)
	}
}

func TestRestoreBeforeScaleFails(t *testing.T) {
	c, k := newTestContext(t)
	if err := k.RestoreCoordinates(c); err == nil {
		t.Error("expected error restoring with no saved coordinates")
	}
}

func TestUnsupportedKernelName(t *testing.T) {
	reg := platform.NewRegistry()
	Register(reg)
	p, _ := reg.PlatformByName(Name)

	if _, err := p.CreateKernel("NoSuchKernel", nil); err == nil {
		t.Error("expected error for unregistered kernel name")
	}
}
