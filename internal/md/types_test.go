package md

import (
	"math"
	"testing"
)

func TestBoxVolume(t *testing.T) {
	box := NewBox(2, 3, 4)
	if v := box.Volume(); v != 24 {
		t.Errorf("volume = %v, want 24", v)
	}
	if l := box.Lengths(); l != (Vec3{2, 3, 4}) {
		t.Errorf("lengths = %v", l)
	}
}

func TestBoxScaled(t *testing.T) {
	box := NewCubicBox(3)
	scaled := box.Scaled(2, 1, 0.5)
	if l := scaled.Lengths(); l != (Vec3{6, 3, 1.5}) {
		t.Errorf("scaled lengths = %v", l)
	}
	// Scaling must not touch the original.
	if box.Lengths() != (Vec3{3, 3, 3}) {
		t.Error("original box mutated")
	}
}

func TestBoxValidity(t *testing.T) {
	tests := []struct {
		name  string
		box   Box
		valid bool
	}{
		{"cube", NewCubicBox(3), true},
		{"zero volume", NewBox(0, 3, 3), false},
		{"negative axis", NewBox(3, -3, 3), false},
		{"nan", NewBox(math.NaN(), 3, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if !a.IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec3{math.Inf(1), 0, 0}).IsFinite() {
		t.Error("infinite vector reported finite")
	}
}

func TestSystemMolecules(t *testing.T) {
	sys := NewSystem()
	for i := 0; i < 4; i++ {
		sys.AddParticle(18)
	}

	// With no explicit grouping every particle is its own molecule.
	if sys.NumMolecules() != 4 {
		t.Errorf("implicit molecules = %d, want 4", sys.NumMolecules())
	}

	sys.AddMolecule([]int{0, 1, 2})
	sys.AddMolecule([]int{3})
	if sys.NumMolecules() != 2 {
		t.Errorf("explicit molecules = %d, want 2", sys.NumMolecules())
	}
	if sys.TotalMass() != 72 {
		t.Errorf("total mass = %v, want 72", sys.TotalMass())
	}
}
