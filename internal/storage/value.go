package storage

import (
	"sync"

	json "github.com/goccy/go-json"

	"socialnino/internal/providers"
)

// Value is a singleton record backed by a single store key, for the entries
// that are not collections (user profile, points total). Same write-through
// and dirty-retry semantics as Collection.
type Value[T any] struct {
	mu    sync.RWMutex
	store *Store
	key   string
	name  string
	val   T
	dirty bool
}

func NewValue[T any](store *Store, key, name string, def T, reg *Registry) *Value[T] {
	v := &Value[T]{
		store: store,
		key:   key,
		name:  name,
		val:   Get(store, key, def),
	}
	reg.Register(v)
	return v
}

func (v *Value[T]) Name() string { return v.name }

func (v *Value[T]) Len() int { return 1 }

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = val
	v.persist()
}

// Mutate applies fn to the value and persists the result, returning it.
func (v *Value[T]) Mutate(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = fn(v.val)
	v.persist()
	return v.val
}

func (v *Value[T]) Flush() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.dirty {
		return nil
	}
	v.persist()
	if v.dirty {
		return &flushError{name: v.name}
	}
	return nil
}

// persist must be called with v.mu held.
func (v *Value[T]) persist() {
	data, err := json.Marshal(v.val)
	if err != nil {
		v.store.logger.Errorf(providers.TypeApp, "Failed to encode value %q: %s", v.name, err)
		v.dirty = true
		return
	}
	if err := v.store.Write(v.key, data); err != nil {
		v.store.logger.Errorf(providers.TypeApp, "Failed to persist value %q: %s", v.name, err)
		v.dirty = true
		return
	}
	v.dirty = false
}
