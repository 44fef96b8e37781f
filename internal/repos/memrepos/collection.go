package memrepos

import (
	"sync"

	"github.com/google/uuid"
)

// collection is a mutex-guarded keyed set that remembers insertion
// order, so listings can tie-break equal sort keys by creation order.
// Values are stored and returned by value; callers get snapshots and
// write back through put.
type collection[T any] struct {
	mu    sync.Mutex
	ids   []uuid.UUID
	items map[uuid.UUID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[uuid.UUID]T)}
}

func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) get(id uuid.UUID) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	return v, ok
}

// put inserts a new entry or replaces an existing one in place,
// keeping its original position in the insertion order.
func (c *collection[T]) put(id uuid.UUID, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ids)
}
