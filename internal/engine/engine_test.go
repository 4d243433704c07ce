package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/san-kum/mdsim/internal/barostat"
	"github.com/san-kum/mdsim/internal/forces"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/metrics"
	"github.com/san-kum/mdsim/internal/platform"
	"github.com/san-kum/mdsim/internal/reference"
	"github.com/san-kum/mdsim/internal/simctx"
)

func buildSimulation(t *testing.T) (*Engine, *simctx.Context) {
	t.Helper()
	registry := platform.NewRegistry()
	reference.Register(registry)
	p, err := registry.PlatformByName(reference.Name)
	if err != nil {
		t.Fatal(err)
	}

	box := md.NewCubicBox(3)
	sys, positions := simctx.BuildLattice(27, box, 18)
	c := simctx.New(sys, forces.Ideal{}, p)
	if err := c.SetPeriodicBoxVectors(box[0], box[1], box[2]); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPositions(positions); err != nil {
		t.Fatal(err)
	}

	cfg := barostat.DefaultConfig()
	cfg.Frequency = 1
	cfg.Seed = 7
	for name, value := range cfg.DefaultParameters() {
		c.SetParameter(name, value)
	}
	ctrl := barostat.New(cfg)
	if err := ctrl.Initialize(c, p); err != nil {
		t.Fatal(err)
	}

	e := New(ctrl)
	e.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return e, c
}

type countingObserver struct {
	ticks int
}

func (o *countingObserver) OnTick(step int, c platform.Context) { o.ticks++ }

func TestRunRecordsEveryTick(t *testing.T) {
	e, c := buildSimulation(t)
	obs := &countingObserver{}
	e.AddObserver(obs)
	e.AddMetric(metrics.NewVolume())

	result, err := e.Run(context.Background(), c, Config{Steps: 50})
	if err != nil {
		t.Fatal(err)
	}
	if result.Steps != 50 || len(result.Volumes) != 50 {
		t.Fatalf("steps = %d, volumes = %d, want 50 each", result.Steps, len(result.Volumes))
	}
	if obs.ticks != 50 {
		t.Errorf("observer ticks = %d, want 50", obs.ticks)
	}
	if result.Attempted != 50 {
		t.Errorf("attempted = %d, want 50", result.Attempted)
	}
	if result.Accepted > result.Attempted {
		t.Errorf("accepted %d exceeds attempted %d", result.Accepted, result.Attempted)
	}
	if v, ok := result.Metrics["volume"]; !ok || v <= 0 {
		t.Errorf("volume metric = %v, %v", v, ok)
	}
	for i, v := range result.Volumes {
		if v <= 0 {
			t.Fatalf("volume[%d] = %v, want > 0", i, v)
		}
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	e, c := buildSimulation(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := e.Run(ctx, c, Config{Steps: 100})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result.Steps != 0 {
		t.Errorf("steps = %d, want 0 after immediate cancel", result.Steps)
	}
}

func TestMetricsResetBetweenRuns(t *testing.T) {
	e, c := buildSimulation(t)
	vol := metrics.NewVolume()
	e.AddMetric(vol)

	if _, err := e.Run(context.Background(), c, Config{Steps: 10}); err != nil {
		t.Fatal(err)
	}
	first := vol.Value()
	if _, err := e.Run(context.Background(), c, Config{Steps: 10}); err != nil {
		t.Fatal(err)
	}
	// A fresh run must not average in samples from the previous one; both
	// values come from 10 samples of a near-constant volume.
	if first <= 0 || vol.Value() <= 0 {
		t.Errorf("metric values %v, %v after reset", first, vol.Value())
	}
}
