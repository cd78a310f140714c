// Package pool provides a generic free-list for scratch values that the
// broad phase allocates on every query — the visited-item sets — so
// repeated World.Check/Move calls on a hot path can reuse a handful of
// maps instead of allocating fresh ones each time.
package pool

// Pool manages a set of reusable values of type T.
// T should be a reference type (map, slice, pointer) for pooling to pay off.
type Pool[T any] struct {
	items   []T
	factory func() T
	reset   func(T)
}

// New creates a Pool. factory builds a fresh T when the pool is empty;
// reset, if non-nil, is run on a value before it's handed back out by Get.
func New[T any](factory func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		items:   make([]T, 0, 8),
		factory: factory,
		reset:   reset,
	}
}

// Get retrieves a value from the pool, resetting it first, or builds a new
// one via factory if the pool is empty.
func (p *Pool[T]) Get() T {
	if len(p.items) == 0 {
		return p.factory()
	}

	lastIdx := len(p.items) - 1
	item := p.items[lastIdx]
	p.items = p.items[:lastIdx]

	if p.reset != nil {
		p.reset(item)
	}

	return item
}

// Put returns a value to the pool for later reuse.
func (p *Pool[T]) Put(item T) {
	p.items = append(p.items, item)
}

// Size returns the number of values currently held by the pool.
func (p *Pool[T]) Size() int {
	return len(p.items)
}

// Clear drops every pooled value.
func (p *Pool[T]) Clear() {
	p.items = p.items[:0]
}
