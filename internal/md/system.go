package md

// System describes the simulated particles: masses in amu and the grouping
// of particles into molecules. Molecule grouping determines how barostat
// kernels translate coordinates when the box is scaled.
type System struct {
	masses    []float64
	molecules [][]int
}

func NewSystem() *System {
	return &System{}
}

// AddParticle appends a particle and returns its index.
func (s *System) AddParticle(mass float64) int {
	s.masses = append(s.masses, mass)
	return len(s.masses) - 1
}

func (s *System) NumParticles() int {
	return len(s.masses)
}

func (s *System) ParticleMass(i int) float64 {
	return s.masses[i]
}

// TotalMass returns the summed particle mass in amu.
func (s *System) TotalMass() float64 {
	total := 0.0
	for _, m := range s.masses {
		total += m
	}
	return total
}

// AddMolecule groups the given particle indices into one molecule.
func (s *System) AddMolecule(particles []int) {
	mol := make([]int, len(particles))
	copy(mol, particles)
	s.molecules = append(s.molecules, mol)
}

// Molecules returns the molecule grouping. When no molecules were defined
// every particle is its own molecule.
func (s *System) Molecules() [][]int {
	if len(s.molecules) > 0 {
		return s.molecules
	}
	mols := make([][]int, len(s.masses))
	for i := range mols {
		mols[i] = []int{i}
	}
	return mols
}

func (s *System) NumMolecules() int {
	if len(s.molecules) > 0 {
		return len(s.molecules)
	}
	return len(s.masses)
}
