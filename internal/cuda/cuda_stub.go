//go:build !cuda

// Package cuda implements the GPU platform. Build with -tags cuda against
// the kernels library produced by build_cuda.sh; without the tag the
// platform reports itself unavailable and registers nothing.
package cuda

import "github.com/san-kum/mdsim/internal/platform"

const Name = "CUDA"

func Available() bool { return false }

func DeviceName() string { return "" }

// Register is a no-op without CUDA support; callers fall through to CPU or
// Reference.
func Register(r *platform.Registry) {}
