package storage

import (
	"sync"

	json "github.com/goccy/go-json"

	"socialnino/internal/providers"
)

// Collection is an in-memory slice of records backed by a single store key.
// Mutations write through immediately; a failed write leaves the collection
// dirty so the scheduler can retry on the next flush tick. Loaded once at
// construction; absent or corrupt blobs start the collection empty.
type Collection[T any] struct {
	mu    sync.RWMutex
	store *Store
	key   string
	name  string
	items []T
	dirty bool
}

func NewCollection[T any](store *Store, key, name string, reg *Registry) *Collection[T] {
	c := &Collection[T]{
		store: store,
		key:   key,
		name:  name,
		items: Get(store, key, []T{}),
	}
	reg.Register(c)
	return c
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a copy of the collection in storage order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Prepend inserts a record at the front (newest-first convention).
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.persist()
}

// Append inserts a record at the back (chronological convention).
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.persist()
}

// Replace swaps the full contents.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.persist()
}

// Update applies fn to the contents and persists the result. fn receives the
// live slice and returns the new contents.
func (c *Collection[T]) Update(fn func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
	c.persist()
}

// Flush re-persists the collection if a write-through previously failed.
func (c *Collection[T]) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	c.persist()
	if c.dirty {
		return &flushError{name: c.name}
	}
	return nil
}

// persist must be called with c.mu held.
func (c *Collection[T]) persist() {
	data, err := json.Marshal(c.items)
	if err != nil {
		c.store.logger.Errorf(providers.TypeApp, "Failed to encode collection %q: %s", c.name, err)
		c.dirty = true
		return
	}
	if err := c.store.Write(c.key, data); err != nil {
		c.store.logger.Errorf(providers.TypeApp, "Failed to persist collection %q: %s", c.name, err)
		c.dirty = true
		return
	}
	c.dirty = false
}

type flushError struct {
	name string
}

func (e *flushError) Error() string {
	return "collection " + e.name + " could not be flushed"
}
