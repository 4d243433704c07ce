package forces

import (
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/mdsim/internal/md"
)

// SoftSphere is a purely repulsive pairwise potential
// epsilon*(sigma/r)^12 under the minimum-image convention. It gives the
// barostat a real energy surface to push against without the bookkeeping of
// a full force field.
type SoftSphere struct {
	Epsilon float64 // kJ/mol
	Sigma   float64 // nm

	workers int
}

func NewSoftSphere(epsilon, sigma float64) *SoftSphere {
	return &SoftSphere{
		Epsilon: epsilon,
		Sigma:   sigma,
		workers: runtime.NumCPU(),
	}
}

func (s *SoftSphere) Name() string { return "softsphere" }

func (s *SoftSphere) PotentialEnergy(positions []md.Vec3, box md.Box) float64 {
	n := len(positions)
	if n < 2 {
		return 0
	}
	lengths := box.Lengths()

	if n < 64 {
		return s.energyRange(positions, lengths, 0, n)
	}

	var wg sync.WaitGroup
	partial := make([]float64, s.workers)
	chunk := (n + s.workers - 1) / s.workers
	for w := 0; w < s.workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			partial[w] = s.energyRange(positions, lengths, start, end)
		}(w, start, end)
	}
	wg.Wait()

	total := 0.0
	for _, e := range partial {
		total += e
	}
	return total
}

// energyRange sums pair energies for i in [start, end), j > i.
func (s *SoftSphere) energyRange(pos []md.Vec3, lengths md.Vec3, start, end int) float64 {
	sigma2 := s.Sigma * s.Sigma
	total := 0.0
	for i := start; i < end; i++ {
		for j := i + 1; j < len(pos); j++ {
			d := pos[j].Sub(pos[i])
			for k := 0; k < 3; k++ {
				d[k] -= lengths[k] * math.Round(d[k]/lengths[k])
			}
			r2 := d.Dot(d)
			if r2 == 0 {
				continue
			}
			x2 := sigma2 / r2
			x6 := x2 * x2 * x2
			total += s.Epsilon * x6 * x6
		}
	}
	return total
}
