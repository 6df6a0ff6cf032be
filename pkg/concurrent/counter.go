package concurrent

import "sync/atomic"

// Counter is a shared event counter, incremented by workers and read for the
// run summary.
type Counter struct {
	count int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Increase() int64 {
	return atomic.AddInt64(&c.count, 1)
}

func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.count)
}
