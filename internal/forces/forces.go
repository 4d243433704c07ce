// Package forces provides the potential-energy models consumed by the
// simulation context. These are deliberately simple: the runtime core treats
// energy evaluation as an opaque capability.
package forces

import (
	"github.com/san-kum/mdsim/internal/md"
)

// EnergyModel evaluates the potential energy of a configuration in kJ/mol.
type EnergyModel interface {
	Name() string
	PotentialEnergy(positions []md.Vec3, box md.Box) float64
}

// Ideal is the zero-potential model. Barostat trials on an ideal system are
// driven purely by the pressure-volume and entropy terms.
type Ideal struct{}

func (Ideal) Name() string { return "ideal" }

func (Ideal) PotentialEnergy(positions []md.Vec3, box md.Box) float64 {
	return 0
}
