// Package oncecell provides write-once cells: containers that start empty,
// accept a value exactly once, and are read-only thereafter.
//
// Cell is for single-goroutine use and carries no synchronization. SyncCell
// is safe for concurrent use from any number of goroutines; when several
// goroutines race to set it, exactly one wins and the rest are rejected.
// Latch is a SyncCell whose readers can block until the first set.
package oncecell

import "errors"

// ErrAlreadySet is returned by Set when the cell already holds a value.
// The caller keeps its rejected value; the stored value is untouched.
var ErrAlreadySet = errors.New("oncecell: cell is already set")
