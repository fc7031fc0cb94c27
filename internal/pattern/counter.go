package pattern

// Counter is the progressive number shared by every %n element of one
// compiled pattern. It advances once per rendered item.
type Counter struct {
	value int
}

// NewCounter returns a counter whose next value is start.
func NewCounter(start int) *Counter {
	return &Counter{value: start}
}

// Value returns the number the next render will use.
func (c *Counter) Value() int { return c.value }

// Reset re-seeds the counter.
func (c *Counter) Reset(start int) { c.value = start }

func (c *Counter) advance() { c.value++ }
