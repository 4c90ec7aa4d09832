// Package barrier implements a one-time-execution barrier: a block of logic
// contended by multiple goroutines runs exactly once, with all contenders
// blocking until that one run completes.
package barrier

import (
	"sync"
	"sync/atomic"
)

// Barrier is like sync.Once with an observable completion flag. Unlike
// sync.Once, completion is published only after the body returns normally,
// so Done never reports true while the protected state is unwritten.
//
// The zero value is ready for use.
type Barrier struct {
	done atomic.Bool
	mu   sync.Mutex
}

// Done reports whether a Do body has completed. The atomic load pairs with
// the store in Do: a caller that observes true also observes every write the
// body made.
func (b *Barrier) Done() bool {
	return b.done.Load()
}

// Do runs f if no body has completed yet. Exactly one caller runs its f;
// concurrent callers block until that run finishes and then return without
// running their own f.
func (b *Barrier) Do(f func()) {
	if b.done.Load() {
		return
	}
	b.doSlow(f)
}

func (b *Barrier) doSlow(f func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done.Load() {
		return
	}
	f()
	b.done.Store(true)
}
