// Package clock provides the elapsed-time source the render loop samples
// once per frame, with a manually driven implementation for tests and
// offline tools.
package clock

import (
	"sync"
	"time"
)

// Clock reports seconds since it started. Successive calls never decrease.
type Clock interface {
	Elapsed() float64
}

// Real follows the process monotonic clock from the moment it is created.
type Real struct {
	mu    sync.Mutex
	start time.Time
	now   func() time.Time
	last  float64
}

// NewReal starts a clock at the current instant.
func NewReal() *Real {
	return newReal(time.Now)
}

func newReal(now func() time.Time) *Real {
	return &Real{start: now(), now: now}
}

// Elapsed returns seconds since NewReal.
func (c *Real) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.now().Sub(c.start).Seconds()
	if e < c.last {
		e = c.last
	}
	c.last = e
	return e
}

// Manual only moves when told to.
type Manual struct {
	mu      sync.Mutex
	elapsed time.Duration
}

func NewManual() *Manual {
	return &Manual{}
}

func (c *Manual) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed.Seconds()
}

// Advance moves the clock forward. Negative durations are ignored.
func (c *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.elapsed += d
	c.mu.Unlock()
}

// Set jumps to an absolute elapsed time if it is not in the past.
func (c *Manual) Set(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > c.elapsed {
		c.elapsed = d
	}
}
