//go:build cuda

// Package cuda implements the GPU platform. Build with -tags cuda against
// the compiled kernels library; without the tag the platform reports itself
// unavailable and registers nothing.
package cuda

/*
#cgo CFLAGS: -I/opt/cuda/include
#cgo LDFLAGS: -L/opt/cuda/lib64 -L${SRCDIR} -lcudart -lkernels -lstdc++
#include <stdlib.h>

extern int cuda_device_count();
extern const char* cuda_device_name_get();
extern void scale_coordinates_gpu(float* positions, int* mol_offsets, int* mol_particles, int n_mols, float sx, float sy, float sz);
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

const Name = "CUDA"

// Available reports whether a CUDA device is present.
func Available() bool {
	return int(C.cuda_device_count()) > 0
}

// DeviceName returns the name of the first CUDA device.
func DeviceName() string {
	if !Available() {
		return ""
	}
	return C.GoString(C.cuda_device_name_get())
}

// Register adds the CUDA platform when a device is present; otherwise it is
// a no-op and the registry falls through to CPU or Reference.
func Register(r *platform.Registry) {
	if !Available() {
		return
	}
	p := platform.NewPlatform(Name)
	p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, factory{})
	r.RegisterPlatform(p)
}

type factory struct{}

func (factory) CreateKernel(name string, p *platform.Platform, c platform.Context) (platform.Kernel, error) {
	if name == platform.ApplyMonteCarloBarostatKernel {
		return &barostatKernel{}, nil
	}
	return nil, fmt.Errorf("%w: %q on %q", md.ErrUnsupportedKernel, name, p.Name())
}

type barostatKernel struct {
	molOffsets   []int32
	molParticles []int32
	saved        []md.Vec3
}

func (k *barostatKernel) KernelName() string {
	return platform.ApplyMonteCarloBarostatKernel
}

func (k *barostatKernel) Initialize(sys *md.System) error {
	molecules := sys.Molecules()
	k.molOffsets = make([]int32, len(molecules)+1)
	k.molParticles = k.molParticles[:0]
	for m, mol := range molecules {
		k.molOffsets[m+1] = k.molOffsets[m] + int32(len(mol))
		for _, i := range mol {
			k.molParticles = append(k.molParticles, int32(i))
		}
	}
	return nil
}

func (k *barostatKernel) ScaleCoordinates(c platform.Context, sx, sy, sz float64) error {
	if k.molOffsets == nil {
		return md.ErrNotInitialized
	}
	pos := c.Positions()
	k.saved = append(k.saved[:0], pos...)

	posF := make([]float32, len(pos)*3)
	for i, p := range pos {
		posF[i*3] = float32(p[0])
		posF[i*3+1] = float32(p[1])
		posF[i*3+2] = float32(p[2])
	}

	C.scale_coordinates_gpu(
		(*C.float)(unsafe.Pointer(&posF[0])),
		(*C.int)(unsafe.Pointer(&k.molOffsets[0])),
		(*C.int)(unsafe.Pointer(&k.molParticles[0])),
		C.int(len(k.molOffsets)-1),
		C.float(sx),
		C.float(sy),
		C.float(sz),
	)

	for i := range pos {
		pos[i] = md.Vec3{float64(posF[i*3]), float64(posF[i*3+1]), float64(posF[i*3+2])}
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
