// Package reference implements the serial Reference platform. It is always
// available and serves as the correctness baseline for other backends.
package reference

import (
	"fmt"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

// Name of the platform in the registry.
const Name = "Reference"

// Register adds the Reference platform with all its kernel factories to the
// registry. Safe to call more than once.
func Register(r *platform.Registry) {
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
