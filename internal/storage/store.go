// Package storage persists simulation runs: metadata, final metrics and the
// volume trace.
package storage

import (
	"context"
	"time"
)

// Run is one stored simulation run.
type Run struct {
	ID             string             `json:"id"`
	CreatedAt      time.Time          `json:"created_at"`
	Platform       string             `json:"platform"`
	Steps          int                `json:"steps"`
	Seed           int64              `json:"seed"`
	Pressure       float64            `json:"pressure"`
	SurfaceTension float64            `json:"surface_tension"`
	Temperature    float64            `json:"temperature"`
	Frequency      int                `json:"frequency"`
	Metrics        map[string]float64 `json:"metrics"`
	Volumes        []float64          `json:"volumes"`
}

// Summary is the listing view of a run, without the trace.
type Summary struct {
	ID          string
	CreatedAt   time.Time
	Platform    string
	Steps       int
	Pressure    float64
	Temperature float64
}

type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Summary, error)
}

// CloseIfSupported closes stores that hold external resources.
func CloseIfSupported(s Store) error {
	closer, ok := s.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
