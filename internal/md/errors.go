package md

import "errors"

// Domain errors for the runtime core.
var (
	// ErrUnknownPlatform indicates a platform name with no registration.
	ErrUnknownPlatform = errors.New("mdsim: unknown platform")

	// ErrUnsupportedKernel indicates a kernel name with no factory on the
	// requested platform.
	ErrUnsupportedKernel = errors.New("mdsim: kernel not supported by platform")

	// ErrNotInitialized indicates a component used before Initialize.
	ErrNotInitialized = errors.New("mdsim: not initialized")

	// ErrInvalidBox indicates zero or negative box volume.
	ErrInvalidBox = errors.New("mdsim: invalid periodic box (non-positive volume)")

	// ErrNonFiniteEnergy indicates a NaN or Inf potential energy.
	ErrNonFiniteEnergy = errors.New("mdsim: non-finite potential energy")

	// ErrUnknownParameter indicates a context parameter that was never set.
	ErrUnknownParameter = errors.New("mdsim: unknown context parameter")
)
