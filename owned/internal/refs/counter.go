package refs

import "sync/atomic"

// Counter is an atomic reference count. A Counter starts life holding a single reference
// once Init has been called; the zero value holds none.
type Counter struct {
	count atomic.Int32
}

// Init sets the count to one. It must be called exactly once, before the Counter is shared.
func (c *Counter) Init() {
	c.count.Store(1)
}

// Acquire adds a reference. It returns false and leaves the count untouched if the last
// reference has already been dropped, since a released object cannot be revived.
func (c *Counter) Acquire() bool {
	for {
		current := c.count.Load()
		if current <= 0 {
			return false
		}

		if c.count.CompareAndSwap(current, current+1) {
			return true
		}
	}
}

// Drop removes a reference and reports whether it was the last one. Dropping a Counter that
// is already at zero does nothing and returns false.
func (c *Counter) Drop() bool {
	for {
		current := c.count.Load()
		if current <= 0 {
			return false
		}

		if c.count.CompareAndSwap(current, current-1) {
			return current == 1
		}
	}
}

// Count returns the number of live references
func (c *Counter) Count() int {
	return int(c.count.Load())
}
