package platform

import (
	"fmt"
	"sync"

	"github.com/san-kum/mdsim/internal/md"
)

// Platform is a named compute backend with a set of registered kernel
// factories.
type Platform struct {
	name string

	mu        sync.RWMutex
	factories map[string]Factory
}

func NewPlatform(name string) *Platform {
	return &Platform{
		name:      name,
		factories: make(map[string]Factory),
	}
}

func (p *Platform) Name() string { return p.name }

// RegisterKernelFactory stores (or overwrites) the factory for a kernel
// name. Backends call this for every kernel they support when they are
// registered into a registry.
func (p *Platform) RegisterKernelFactory(kernelName string, f Factory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factories[kernelName] = f
}

// Supports reports whether a factory is registered for the kernel name.
func (p *Platform) Supports(kernelName string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.factories[kernelName]
	return ok
}

// KernelNames returns the registered kernel names.
func (p *Platform) KernelNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.factories))
	for name := range p.factories {
		names = append(names, name)
	}
	return names
}

// CreateKernel constructs the kernel registered under name. A missing
// factory is a configuration error, never retried.
func (p *Platform) CreateKernel(name string, c Context) (Kernel, error) {
	p.mu.RLock()
	f, ok := p.factories[name]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q on %q", md.ErrUnsupportedKernel, name, p.name)
	}
	return f.CreateKernel(name, p, c)
}
