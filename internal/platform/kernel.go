package platform

import "github.com/san-kum/mdsim/internal/md"

// Kernel names. One name per operation contract.
const (
	// ApplyMonteCarloBarostatKernel scales and restores particle
	// coordinates when a barostat perturbs the periodic box.
	ApplyMonteCarloBarostatKernel = "ApplyMonteCarloBarostat"
)

// Context is the narrow view of a simulation context consumed by kernels
// and controllers. Box vectors and positions are owned by the context;
// mutation goes through a single writer per tick.
type Context interface {
	// PeriodicBoxVectors returns the three current box vectors.
	PeriodicBoxVectors() (md.Vec3, md.Vec3, md.Vec3)

	// SetPeriodicBoxVectors commits new box vectors. It fails with
	// md.ErrInvalidBox when the resulting volume is not positive.
	SetPeriodicBoxVectors(a, b, c md.Vec3) error

	// Positions returns the live particle coordinate slice. Kernels
	// mutate it in place.
	Positions() []md.Vec3

	// PotentialEnergy evaluates the current potential energy in kJ/mol.
	PotentialEnergy() float64

	// Parameter returns a runtime context parameter by name.
	Parameter(name string) (float64, error)

	// MoleculeCount returns the number of molecules in the system.
	MoleculeCount() int

	// System returns the particle/molecule description.
	System() *md.System
}

// Kernel is the base contract every backend operation implements. The name
// identifies the operation for diagnostics.
type Kernel interface {
	KernelName() string
}

// BarostatKernel is the contract behind ApplyMonteCarloBarostatKernel.
// ScaleCoordinates must leave the context fully consistent on return, and
// RestoreCoordinates must undo the most recent scaling exactly.
type BarostatKernel interface {
	Kernel
	Initialize(sys *md.System) error
	ScaleCoordinates(c Context, sx, sy, sz float64) error
	RestoreCoordinates(c Context) error
}

// Factory constructs kernels for the names it was registered under.
type Factory interface {
	CreateKernel(name string, p *Platform, c Context) (Kernel, error)
}
