package platform

import (
	"fmt"
	"sync"

	"github.com/san-kum/mdsim/internal/md"
)

// Registry maps platform names to registered platforms. It is populated by
// explicit RegisterPlatform calls at application start and read-only while
// simulations run.
type Registry struct {
	mu        sync.RWMutex
	platforms map[string]*Platform
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		platforms: make(map[string]*Platform),
	}
}

// RegisterPlatform adds a platform, keeping registration order for
// first-match dispatch. Re-registering a name replaces the entry without
// changing its position.
func (r *Registry) RegisterPlatform(p *Platform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.platforms[p.name]; !ok {
		r.order = append(r.order, p.name)
	}
	r.platforms[p.name] = p
}

// PlatformByName returns the platform registered under name.
func (r *Registry) PlatformByName(name string) (*Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.platforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", md.ErrUnknownPlatform, name)
	}
	return p, nil
}

// FindPlatform returns the first registered platform supporting the kernel
// name.
func (r *Registry) FindPlatform(kernelName string) (*Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		if p := r.platforms[name]; p.Supports(kernelName) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no platform supports kernel %q", md.ErrUnknownPlatform, kernelName)
}

// Names returns the registered platform names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
