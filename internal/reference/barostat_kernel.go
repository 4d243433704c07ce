package reference

import (
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

// barostatKernel scales coordinates when the barostat perturbs the box.
// Molecules are moved rigidly: each molecule's center is scaled and the
// whole molecule translated by the center displacement, so intramolecular
// geometry survives the move.
type barostatKernel struct {
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

	for _, mol := range k.molecules {
		center := moleculeCenter(pos, mol)
		offset := md.Vec3{
			center[0] * (sx - 1),
			center[1] * (sy - 1),
			center[2] * (sz - 1),
		}
		for _, i := range mol {
			pos[i] = pos[i].Add(offset)
		}
	}
	return nil
}

func (k *barostatKernel) RestoreCoordinates(c platform.Context) error {
	if k.saved == nil {
		return md.ErrNotInitialized
	}
	copy(c.Positions(), k.saved)
	return nil
}

func moleculeCenter(pos []md.Vec3, mol []int) md.Vec3 {
	var center md.Vec3
	for _, i := range mol {
		center = center.Add(pos[i])
	}
	return center.Scale(1 / float64(len(mol)))
}
