package storage

import "sync"

// Flusher is a persisted collection that can re-save itself and report its
// size. Collections register themselves on creation.
type Flusher interface {
	Name() string
	Len() int
	Flush() error
}

type Registry struct {
	mu       sync.RWMutex
	flushers []Flusher
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(f Flusher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushers = append(r.flushers, f)
}

// FlushAll re-persists every dirty collection and returns the first error.
// Remaining collections are still flushed after a failure.
func (r *Registry) FlushAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var firstErr error
	for _, f := range r.flushers {
		if err := f.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Registry) Sizes() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sizes := make(map[string]int, len(r.flushers))
	for _, f := range r.flushers {
		sizes[f.Name()] = f.Len()
	}
	return sizes
}
