package platform_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

type nullKernel struct{ name string }

func (k nullKernel) KernelName() string { return k.name }

type nullFactory struct{}

func (nullFactory) CreateKernel(name string, p *platform.Platform, c platform.Context) (platform.Kernel, error) {
	return nullKernel{name: name}, nil
}

type failingFactory struct{}

func (failingFactory) CreateKernel(name string, p *platform.Platform, c platform.Context) (platform.Kernel, error) {
	return nil, fmt.Errorf("%w: %q on %q", md.ErrUnsupportedKernel, name, p.Name())
}

var _ = Describe("Registry", func() {
	var reg *platform.Registry

	BeforeEach(func() {
		reg = platform.NewRegistry()
	})

	It("fails lookup for unregistered platform names", func() {
		_, err := reg.PlatformByName("Reference")
		Expect(err).To(MatchError(md.ErrUnknownPlatform))
	})

	It("returns registered platforms by name", func() {
		p := platform.NewPlatform("Reference")
		reg.RegisterPlatform(p)

		got, err := reg.PlatformByName("Reference")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeIdenticalTo(p))
	})

	It("registers idempotently without duplicating names", func() {
		reg.RegisterPlatform(platform.NewPlatform("Reference"))
		reg.RegisterPlatform(platform.NewPlatform("Reference"))

		Expect(reg.Names()).To(Equal([]string{"Reference"}))
	})

	It("preserves registration order for first-match dispatch", func() {
		gpu := platform.NewPlatform("GPU")
		gpu.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, nullFactory{})
		ref := platform.NewPlatform("Reference")
		ref.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, nullFactory{})
		reg.RegisterPlatform(gpu)
		reg.RegisterPlatform(ref)

		got, err := reg.FindPlatform(platform.ApplyMonteCarloBarostatKernel)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name()).To(Equal("GPU"))
	})

	It("skips platforms missing the kernel during first-match dispatch", func() {
		bare := platform.NewPlatform("Bare")
		ref := platform.NewPlatform("Reference")
		ref.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, nullFactory{})
		reg.RegisterPlatform(bare)
		reg.RegisterPlatform(ref)

		got, err := reg.FindPlatform(platform.ApplyMonteCarloBarostatKernel)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name()).To(Equal("Reference"))
	})

	It("fails dispatch when no platform supports the kernel", func() {
		reg.RegisterPlatform(platform.NewPlatform("Bare"))

		_, err := reg.FindPlatform(platform.ApplyMonteCarloBarostatKernel)
		Expect(err).To(MatchError(md.ErrUnknownPlatform))
	})
})

var _ = Describe("Platform", func() {
	var p *platform.Platform

	BeforeEach(func() {
		p = platform.NewPlatform("Test")
	})

	It("creates kernels through the registered factory", func() {
		p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, nullFactory{})

		k, err := p.CreateKernel(platform.ApplyMonteCarloBarostatKernel, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(k.KernelName()).To(Equal(platform.ApplyMonteCarloBarostatKernel))
	})

	It("fails with the unsupported-kernel error for unregistered names", func() {
		_, err := p.CreateKernel("NoSuchKernel", nil)
		Expect(err).To(MatchError(md.ErrUnsupportedKernel))
		Expect(err.Error()).To(ContainSubstring("NoSuchKernel"))
	})

	It("overwrites a factory registered under the same name", func() {
		p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, failingFactory{})
		p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, nullFactory{})

		_, err := p.CreateKernel(platform.ApplyMonteCarloBarostatKernel, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("propagates factory errors", func() {
		p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, failingFactory{})

		_, err := p.CreateKernel(platform.ApplyMonteCarloBarostatKernel, nil)
		Expect(errors.Is(err, md.ErrUnsupportedKernel)).To(BeTrue())
	})

	It("reports its registered kernel names", func() {
		Expect(p.Supports(platform.ApplyMonteCarloBarostatKernel)).To(BeFalse())
		p.RegisterKernelFactory(platform.ApplyMonteCarloBarostatKernel, nullFactory{})
		Expect(p.Supports(platform.ApplyMonteCarloBarostatKernel)).To(BeTrue())
		Expect(p.KernelNames()).To(ConsistOf(platform.ApplyMonteCarloBarostatKernel))
	})
})
