package oncecell

// Latch is a write-once cell whose readers can block until the first value
// arrives. It has the same set-once contract as SyncCell, plus Wait and a
// closable channel for select loops.
type Latch[T any] struct {
	cell  SyncCell[T]
	ready chan struct{}
}

// NewLatch creates an empty latch.
func NewLatch[T any]() *Latch[T] {
	return &Latch[T]{ready: make(chan struct{})}
}

// Set stores value if the latch is empty, wakes all waiters, and returns
// nil. Losers get ErrAlreadySet, as with SyncCell.
func (l *Latch[T]) Set(value T) error {
	if err := l.cell.Set(value); err != nil {
		return err
	}
	close(l.ready)
	return nil
}

// Wait blocks until the latch is set, then returns the stored value. Safe to
// call any number of times; once set it returns immediately.
func (l *Latch[T]) Wait() T {
	<-l.ready
	return l.cell.MustGet()
}

// Chan returns a channel that is closed once the latch is set.
func (l *Latch[T]) Chan() <-chan struct{} {
	return l.ready
}

// Get returns the stored value without blocking, or the zero value and false
// if the latch is empty.
func (l *Latch[T]) Get() (T, bool) {
	return l.cell.Get()
}

// IsSet returns true if the latch holds a value.
func (l *Latch[T]) IsSet() bool {
	return l.cell.IsSet()
}
