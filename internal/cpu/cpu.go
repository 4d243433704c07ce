// Package cpu implements the worker-parallel CPU platform. It produces the
// same results as the Reference platform and chunks molecule translation
// across goroutines for large systems.
package cpu

import (
	"fmt"
	"runtime"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

const Name = "CPU"

// Register adds the CPU platform with all its kernel factories to the
// registry. Safe to call more than once.
func Register(r *platform.Registry) {
	p := platform.NewPlatform(Name)
	p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, factory{})
	r.RegisterPlatform(p)
}

type factory struct{}

func (factory) CreateKernel(name string, p *platform.Platform, c platform.Context) (platform.Kernel, error) {
	if name == platform.ApplyMonteCarloBarostatKernel {
		return &barostatKernel{workers: runtime.NumCPU()}, nil
	}
	return nil, fmt.Errorf("%w: %q on %q", md.ErrUnsupportedKernel, name, p.Name())
}
