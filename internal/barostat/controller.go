package barostat

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
	"github.com/san-kum/mdsim/internal/units"
)

// Source supplies uniform variates in [0, 1). math/rand satisfies it; tests
// substitute deterministic stubs.
type Source interface {
	Float64() float64
}

// Controller runs one Metropolis volume trial per control interval and owns
// the per-axis adaptive move-amplitude state.
type Controller struct {
	owner  *Config
	kernel platform.BarostatKernel
	rng    Source

	volumeScale  [3]float64
	numAttempted [3]int
	numAccepted  [3]int
	step         int

	totalAttempted int
	totalAccepted  int

	initialized bool
}

func New(cfg *Config) *Controller {
	return &Controller{owner: cfg}
}

// SetRandomSource replaces the uniform-variate source. Call before
// Initialize to override the seeded default.
func (b *Controller) SetRandomSource(src Source) {
	b.rng = src
}

// Initialize resolves the platform kernel for this barostat's operation,
// sets each axis's initial move amplitude to 1% of the current volume,
// zeroes the counters and seeds the random source. A configured seed of 0
// selects an OS-derived seed; 0 itself is never used as the generator seed.
func (b *Controller) Initialize(c platform.Context, p *platform.Platform) error {
	k, err := p.CreateKernel(platform.ApplyMonteCarloBarostatKernel, c)
	if err != nil {
		return err
	}
	bk, ok := k.(platform.BarostatKernel)
	if !ok {
		return fmt.Errorf("%w: %q did not implement the barostat contract", md.ErrUnsupportedKernel, p.Name())
	}
	if err := bk.Initialize(c.System()); err != nil {
		return err
	}
	b.kernel = bk

	bx, by, bz := c.PeriodicBoxVectors()
	volume := md.Box{bx, by, bz}.Volume()
	if volume <= 0 {
		return fmt.Errorf("%w: volume %g", md.ErrInvalidBox, volume)
	}
	for i := 0; i < 3; i++ {
		b.volumeScale[i] = 0.01 * volume
		b.numAttempted[i] = 0
		b.numAccepted[i] = 0
	}
	b.step = 0
	b.totalAttempted = 0
	b.totalAccepted = 0

	if b.rng == nil {
		seed := b.owner.Seed
		if seed == 0 {
			seed = osSeed()
		}
		b.rng = rand.New(rand.NewSource(seed))
	}
	b.initialized = true
	return nil
}

// UpdateContextState advances the step counter and, on reaching the control
// interval, runs one Metropolis trial. A frequency of 0 disables the
// barostat. The call either commits a trial cleanly or rolls the context
// back to its pre-trial state before returning an error.
func (b *Controller) UpdateContextState(c platform.Context) error {
	if !b.initialized {
		return fmt.Errorf("%w: barostat", md.ErrNotInitialized)
	}
	b.step++
	if b.step < b.owner.Frequency || b.owner.Frequency == 0 {
		return nil
	}
	b.step = 0

	initialEnergy := c.PotentialEnergy()
	if !isFinite(initialEnergy) {
		return fmt.Errorf("%w: before trial", md.ErrNonFiniteEnergy)
	}
	pressure, err := c.Parameter(PressureParameter)
	if err != nil {
		return err
	}
	tension, err := c.Parameter(SurfaceTensionParameter)
	if err != nil {
		return err
	}
	pressure *= units.PressureScale
	tension *= units.PressureScale

	// Choose the trial axis. Axis 0 is always a valid outcome, so the
	// rejection loop terminates.
	var axis int
	for {
		rnd := b.rng.Float64() * 3
		if rnd < 1 {
			axis = 0
			break
		} else if rnd < 2 {
			axis = 1
			if b.owner.XYMode == XYIsotropic {
				axis = 0
			}
			break
		} else if b.owner.ZMode == ZFree {
			axis = 2
			break
		}
	}

	bx, by, bz := c.PeriodicBoxVectors()
	box := md.Box{bx, by, bz}
	volume := box.Volume()
	if volume <= 0 {
		return fmt.Errorf("%w: volume %g", md.ErrInvalidBox, volume)
	}
	deltaVolume := b.volumeScale[axis] * 2 * (b.rng.Float64() - 0.5)
	newVolume := volume + deltaVolume

	scale := md.Vec3{1, 1, 1}
	if (axis == 0 || axis == 1) && b.owner.XYMode == XYIsotropic {
		s := math.Sqrt(newVolume / volume)
		scale[0], scale[1] = s, s
	} else {
		scale[axis] = newVolume / volume
	}
	if b.owner.ZMode == ZConstantVolume {
		scale[2] = 1 / (scale[0] * scale[1])
		newVolume = volume
		deltaVolume = 0
	}
	if newVolume <= 0 || !scale.IsFinite() {
		return fmt.Errorf("%w: trial volume %g", md.ErrInvalidBox, newVolume)
	}

	// Lateral-area change, needed for the surface-tension term, computed
	// before anything is scaled.
	deltaArea := bx[0]*scale[0]*by[1]*scale[1] - bx[0]*by[1]

	if err := b.kernel.ScaleCoordinates(c, scale[0], scale[1], scale[2]); err != nil {
		return err
	}
	if err := c.SetPeriodicBoxVectors(bx.Scale(scale[0]), by.Scale(scale[1]), bz.Scale(scale[2])); err != nil {
		if rerr := b.kernel.RestoreCoordinates(c); rerr != nil {
			return rerr
		}
		return err
	}

	finalEnergy := c.PotentialEnergy()
	if !isFinite(finalEnergy) {
		if err := b.rollback(c, bx, by, bz); err != nil {
			return err
		}
		return fmt.Errorf("%w: after scaling", md.ErrNonFiniteEnergy)
	}

	kT := units.KT(b.owner.Temperature)
	w := finalEnergy - initialEnergy +
		pressure*deltaVolume -
		tension*deltaArea -
		float64(c.MoleculeCount())*kT*math.Log(newVolume/volume)

	if w > 0 && b.rng.Float64() > math.Exp(-w/kT) {
		// Reject. The bookkeeping volume still moves to the attempted
		// value so the amplitude cap tracks the trial, not the state.
		if err := b.rollback(c, bx, by, bz); err != nil {
			return err
		}
		volume = newVolume
	} else {
		b.numAccepted[axis]++
		b.totalAccepted++
	}
	b.numAttempted[axis]++
	b.totalAttempted++

	if b.numAttempted[axis] >= 10 {
		attempted := float64(b.numAttempted[axis])
		accepted := float64(b.numAccepted[axis])
		if accepted < 0.25*attempted {
			b.volumeScale[axis] /= 1.1
			b.numAttempted[axis] = 0
			b.numAccepted[axis] = 0
		} else if accepted > 0.75*attempted {
			b.volumeScale[axis] = math.Min(b.volumeScale[axis]*1.1, volume*0.3)
			b.numAttempted[axis] = 0
			b.numAccepted[axis] = 0
		}
	}
	return nil
}

func (b *Controller) rollback(c platform.Context, bx, by, bz md.Vec3) error {
	if err := b.kernel.RestoreCoordinates(c); err != nil {
		return err
	}
	return c.SetPeriodicBoxVectors(bx, by, bz)
}

// VolumeScale returns the per-axis move amplitudes in nm^3.
func (b *Controller) VolumeScale() [3]float64 { return b.volumeScale }

// Attempted returns the per-axis trial counts since the last tuning reset.
func (b *Controller) Attempted() [3]int { return b.numAttempted }

// Accepted returns the per-axis acceptance counts since the last tuning
// reset.
func (b *Controller) Accepted() [3]int { return b.numAccepted }

// Stats returns cumulative attempted and accepted trial totals. Unlike the
// per-axis counters these are never reset by tuning.
func (b *Controller) Stats() (attempted, accepted int) {
	return b.totalAttempted, b.totalAccepted
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
