// Package simctx provides the concrete simulation context: the owner of the
// periodic box, particle coordinates and runtime parameters that controllers
// and kernels operate on through the platform.Context interface.
package simctx

import (
	"fmt"

	"github.com/san-kum/mdsim/internal/forces"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

// Context owns the mutable simulation state for one simulation. Box vectors
// and positions are mutated only through controller kernel calls, one writer
// per tick.
type Context struct {
	system    *md.System
	box       md.Box
	positions []md.Vec3
	params    map[string]float64
	model     forces.EnergyModel
	plat      *platform.Platform
}

func New(sys *md.System, model forces.EnergyModel, p *platform.Platform) *Context {
	return &Context{
		system: sys,
		params: make(map[string]float64),
		model:  model,
		plat:   p,
	}
}

// Platform returns the compute platform this context is bound to.
func (c *Context) Platform() *platform.Platform { return c.plat }

func (c *Context) System() *md.System { return c.system }

func (c *Context) MoleculeCount() int { return c.system.NumMolecules() }

func (c *Context) PeriodicBoxVectors() (md.Vec3, md.Vec3, md.Vec3) {
	return c.box[0], c.box[1], c.box[2]
}

func (c *Context) SetPeriodicBoxVectors(a, b, cv md.Vec3) error {
	box := md.Box{a, b, cv}
	if !box.IsValid() {
		return fmt.Errorf("%w: volume %g", md.ErrInvalidBox, box.Volume())
	}
	c.box = box
	return nil
}

// Box returns the current periodic box.
func (c *Context) Box() md.Box { return c.box }

// SetPositions replaces the particle coordinates. The slice is owned by the
// context afterwards.
func (c *Context) SetPositions(pos []md.Vec3) error {
	if len(pos) != c.system.NumParticles() {
		return fmt.Errorf("mdsim: %d positions for %d particles", len(pos), c.system.NumParticles())
	}
	c.positions = pos
	return nil
}

func (c *Context) Positions() []md.Vec3 { return c.positions }

func (c *Context) PotentialEnergy() float64 {
	if c.model == nil {
		return 0
	}
	return c.model.PotentialEnergy(c.positions, c.box)
}

func (c *Context) Parameter(name string) (float64, error) {
	v, ok := c.params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", md.ErrUnknownParameter, name)
	}
	return v, nil
}

// SetParameter sets a runtime parameter. Controllers read parameters each
// evaluation, so changes take effect on the next tick.
func (c *Context) SetParameter(name string, value float64) {
	c.params[name] = value
}
