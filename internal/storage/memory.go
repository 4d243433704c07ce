package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps runs in process memory. Useful for tests and one-shot
// runs that don't need a database file.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]Run
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]Run)}
}

func (s *MemoryStore) Init(ctx context.Context) error { return nil }

func (s *MemoryStore) SaveRun(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]Summary, 0, len(s.runs))
	for _, run := range s.runs {
		summaries = append(summaries, Summary{
			ID:          run.ID,
			CreatedAt:   run.CreatedAt,
			Platform:    run.Platform,
			Steps:       run.Steps,
			Pressure:    run.Pressure,
			Temperature: run.Temperature,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
	})
	return summaries, nil
}
