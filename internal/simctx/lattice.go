package simctx

import "github.com/san-kum/mdsim/internal/md"

// BuildLattice creates a system of n single-particle molecules of the given
// mass placed on a cubic lattice inside the box. The lattice keeps initial
// pair distances away from zero so repulsive energy models start finite.
func BuildLattice(n int, box md.Box, mass float64) (*md.System, []md.Vec3) {
	sys := md.NewSystem()
	positions := make([]md.Vec3, 0, n)

	side := 1
	for side*side*side < n {
		side++
	}
	lengths := box.Lengths()

	for i := 0; i < n; i++ {
		idx := sys.AddParticle(mass)
		sys.AddMolecule([]int{idx})
		ix := i % side
		iy := (i / side) % side
		iz := i / (side * side)
		positions = append(positions, md.Vec3{
			(float64(ix) + 0.5) * lengths[0] / float64(side),
			(float64(iy) + 0.5) * lengths[1] / float64(side),
			(float64(iz) + 0.5) * lengths[2] / float64(side),
		})
	}
	return sys, positions
}
