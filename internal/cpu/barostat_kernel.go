package cpu

import (
	"sync"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

// serialThreshold is the molecule count below which parallel dispatch costs
// more than it saves.
const serialThreshold = 256

type barostatKernel struct {
	workers   int
	molecules [][]int
	saved     []md.Vec3
}

func (k *barostatKernel) KernelName() string {
	return platform.ApplyMonteCarloBarostatKernel
}

func (k *barostatKernel) Initialize(sys *md.System) error {
	k.molecules = sys.Molecules()
	return nil
}

func (k *barostatKernel) ScaleCoordinates(c platform.Context, sx, sy, sz float64) error {
	if k.molecules == nil {
		return md.ErrNotInitialized
	}
	pos := c.Positions()
	k.saved = append(k.saved[:0], pos...)

	if len(k.molecules) < serialThreshold {
		scaleRange(pos, k.molecules, 0, len(k.molecules), sx, sy, sz)
		return nil
	}

	var wg sync.WaitGroup
	chunk := (len(k.molecules) + k.workers - 1) / k.workers
	for w := 0; w < k.workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(k.molecules) {
			end = len(k.molecules)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			scaleRange(pos, k.molecules, start, end, sx, sy, sz)
		}(start, end)
	}
	wg.Wait()
	return nil
}

func (k *barostatKernel) RestoreCoordinates(c platform.Context) error {
	if k.saved == nil {
		return md.ErrNotInitialized
	}
	copy(c.Positions(), k.saved)
	return nil
}

// scaleRange moves molecules [start, end) rigidly by their scaled center
// displacement. Molecules never share particles, so ranges write disjoint
// position entries.
func scaleRange(pos []md.Vec3, molecules [][]int, start, end int, sx, sy, sz float64) {
	for m := start; m < end; m++ {
		mol := molecules[m]
		var center md.Vec3
		for _, i := range mol {
			center = center.Add(pos[i])
		}
		center = center.Scale(1 / float64(len(mol)))
		offset := md.Vec3{
			center[0] * (sx - 1),
			center[1] * (sy - 1),
			center[2] * (sz - 1),
		}
		for _, i := range mol {
			pos[i] = pos[i].Add(offset)
		}
	}
}
