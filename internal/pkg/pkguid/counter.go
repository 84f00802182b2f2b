package pkguid

import "sync/atomic"

// Counter generates process-local, monotonically increasing numeric IDs
// starting at zero. It is the fallback when no Snowflake node is available.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a Counter whose first Generate call yields 0.
func NewCounter() *Counter {
	return &Counter{}
}

// Generate returns the next ID.
func (c *Counter) Generate() int64 {
	return c.n.Add(1) - 1
}
