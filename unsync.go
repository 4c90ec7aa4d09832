package oncecell

// Cell is a write-once cell for use within a single goroutine (or behind
// external synchronization). It performs no locking at all: Set checks and
// stores non-atomically, which is only correct under that contract. Use
// SyncCell when the cell is shared across goroutines.
//
// The zero value is an empty cell ready for use.
type Cell[T any] struct {
	value T
	set   bool
}

// NewCell creates an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Get returns the stored value, or the zero value and false if the cell is
// empty.
func (c *Cell[T]) Get() (T, bool) {
	return c.value, c.set
}

// GetMut returns a pointer into the cell's slot, or nil if the cell is empty.
// The caller must not hold the pointer across other uses of the cell.
func (c *Cell[T]) GetMut() *T {
	if !c.set {
		return nil
	}
	return &c.value
}

// MustGet returns the stored value or panics if the cell is empty.
func (c *Cell[T]) MustGet() T {
	if !c.set {
		panic("oncecell: cell is not set")
	}
	return c.value
}

// IsSet returns true if the cell holds a value.
func (c *Cell[T]) IsSet() bool {
	return c.set
}

// Set stores value if the cell is empty and returns nil. If the cell is
// already set it returns ErrAlreadySet and leaves the stored value untouched.
func (c *Cell[T]) Set(value T) error {
	if c.set {
		return ErrAlreadySet
	}
	c.value = value
	c.set = true
	return nil
}
