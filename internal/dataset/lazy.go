package dataset

import (
	"context"
	"sync"
	"sync/atomic"
)

// Lazy memoizes the result of a load function.
//
// The first successful Get stores the value; later calls return it without
// locking. Concurrent first callers block on the mutex, so load runs at most
// once at a time and never again after a success. A failed load stores
// nothing: the next Get calls load again.
type Lazy[T any] struct {
	mu    sync.Mutex
	done  atomic.Bool
	value T
	load  func(ctx context.Context) (T, error)
}

// NewLazy creates a Lazy around load.
func NewLazy[T any](load func(ctx context.Context) (T, error)) *Lazy[T] {
	return &Lazy[T]{load: load}
}

// Get returns the memoized value, loading it on first use.
func (l *Lazy[T]) Get(ctx context.Context) (T, error) {
	if l.done.Load() {
		return l.value, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done.Load() {
		return l.value, nil
	}

	v, err := l.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = v
	l.done.Store(true)
	return v, nil
}

// Loaded reports whether a value has been stored.
func (l *Lazy[T]) Loaded() bool {
	return l.done.Load()
}
