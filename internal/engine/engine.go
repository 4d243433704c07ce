// Package engine drives a barostat-controlled simulation: it ticks the
// controller, samples metrics and feeds observers.
package engine

import (
	"context"
	"log/slog"

	"github.com/san-kum/mdsim/internal/barostat"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/metrics"
	"github.com/san-kum/mdsim/internal/platform"
)

// Observer is notified after every tick.
type Observer interface {
	OnTick(step int, c platform.Context)
}

type Config struct {
	Steps    int
	LogEvery int // 0 disables progress logging
}

type Result struct {
	Steps     int
	Volumes   []float64 // box volume after each tick
	Accepted  int
	Attempted int
	Metrics   map[string]float64
}

type Engine struct {
	ctrl      *barostat.Controller
	metrics   []metrics.Metric
	observers []Observer
	logger    *slog.Logger
}

func New(ctrl *barostat.Controller) *Engine {
	return &Engine{
		ctrl:   ctrl,
		logger: slog.Default(),
	}
}

func (e *Engine) AddMetric(m metrics.Metric)    { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer)        { e.observers = append(e.observers, o) }
func (e *Engine) SetLogger(logger *slog.Logger) { e.logger = logger }

// Run ticks the controller cfg.Steps times. It stops early when ctx is
// canceled, returning the partial result alongside the context error.
func (e *Engine) Run(ctx context.Context, c platform.Context, cfg Config) (*Result, error) {
	result := &Result{
		Volumes: make([]float64, 0, cfg.Steps),
		Metrics: make(map[string]float64),
	}
	for _, m := range e.metrics {
		m.Reset()
	}

	for step := 0; step < cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			e.finish(result)
			return result, ctx.Err()
		default:
		}

		if err := e.ctrl.UpdateContextState(c); err != nil {
			e.finish(result)
			return result, err
		}

		a, b, cv := c.PeriodicBoxVectors()
		result.Volumes = append(result.Volumes, md.Box{a, b, cv}.Volume())
		result.Steps++

		for _, m := range e.metrics {
			m.Observe(c)
		}
		for _, o := range e.observers {
			o.OnTick(step, c)
		}

		if cfg.LogEvery > 0 && (step+1)%cfg.LogEvery == 0 {
			attempted, accepted := e.ctrl.Stats()
			e.logger.Info("barostat progress",
				"step", step+1,
				"volume", result.Volumes[len(result.Volumes)-1],
				"attempted", attempted,
				"accepted", accepted,
			)
		}
	}

	e.finish(result)
	return result, nil
}

func (e *Engine) finish(result *Result) {
	result.Attempted, result.Accepted = e.ctrl.Stats()
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
