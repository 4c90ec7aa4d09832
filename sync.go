package oncecell

import (
	"github.com/sjtug/oncecell/internal/barrier"
)

// SyncCell is a write-once cell safe for concurrent use from any number of
// goroutines. Exactly one Set wins; every other Set is rejected with
// ErrAlreadySet. A Get that reports the cell as set is guaranteed to see the
// winner's value fully written.
//
// SyncCell has no GetMut: the committed value is immutable for the rest of
// the cell's lifetime, since no exclusive reference can be granted while
// arbitrary goroutines share the cell.
//
// The zero value is an empty cell ready for use. A SyncCell must not be
// copied after first use.
type SyncCell[T any] struct {
	barrier barrier.Barrier
	value   T
}

// NewSyncCell creates an empty cell.
func NewSyncCell[T any]() *SyncCell[T] {
	return &SyncCell[T]{}
}

// Get returns the stored value, or the zero value and false if the cell is
// empty. Presence is decided solely by the barrier's completion flag; the
// slot is read only after that flag has been observed, which is what makes
// the read safe against a concurrent writer. Get never blocks.
func (c *SyncCell[T]) Get() (T, bool) {
	if !c.barrier.Done() {
		var zero T
		return zero, false
	}
	return c.value, true
}

// MustGet returns the stored value or panics if the cell is empty.
func (c *SyncCell[T]) MustGet() T {
	v, ok := c.Get()
	if !ok {
		panic("oncecell: cell is not set")
	}
	return v
}

// IsSet returns true if the cell holds a value.
func (c *SyncCell[T]) IsSet() bool {
	return c.barrier.Done()
}

// Set stores value if the cell is empty and returns nil. If the cell is
// already set, or another goroutine's concurrent Set wins the race, it
// returns ErrAlreadySet and the caller keeps its value.
//
// Set blocks only while the winning store is in flight; losers that arrive
// during that window wait for it to finish, then report rejection.
func (c *SyncCell[T]) Set(value T) error {
	if c.barrier.Done() {
		return ErrAlreadySet
	}

	stored := false
	c.barrier.Do(func() {
		if c.barrier.Done() {
			panic("oncecell: barrier ran its body twice")
		}
		c.value = value
		stored = true
	})

	// Whether the barrier is now complete says nothing about who won; only
	// whether our own body ran does.
	if !stored {
		return ErrAlreadySet
	}
	return nil
}
