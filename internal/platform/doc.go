// Package platform implements the compute-platform abstraction.
//
// A Platform is a named compute backend exposing a set of kernels, each a
// backend-specific implementation of one operation contract. Factories are
// registered per (platform, kernel name) pair; the simulation core resolves
// a kernel once at initialization and never names a backend directly:
//
//	reg := platform.NewRegistry()
//	reference.Register(reg)
//	p, err := reg.PlatformByName("Reference")
//	k, err := p.CreateKernel(platform.ApplyMonteCarloBarostatKernel, ctx)
//
// Registration is an explicit, idempotent call made at application start.
// The registry is read-only afterwards and safe for concurrent reads by
// multiple simulations sharing the process.
//
// Dispatch is through Go interfaces; kernel name strings are diagnostic
// identifiers and registry keys, not the dispatch mechanism.
package platform
