package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealStartsAtZero(t *testing.T) {
	base := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	now := base
	c := newReal(func() time.Time { return now })

	assert.Equal(t, 0.0, c.Elapsed())

	now = base.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-12)
}

func TestRealNeverRunsBackwards(t *testing.T) {
	base := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	now := base.Add(2 * time.Second)
	c := newReal(func() time.Time { return now })

	now = base.Add(5 * time.Second)
	assert.InDelta(t, 3.0, c.Elapsed(), 1e-12)

	now = base.Add(4 * time.Second)
	assert.InDelta(t, 3.0, c.Elapsed(), 1e-12)
}

func TestRealUsesWallClock(t *testing.T) {
	c := NewReal()
	first := c.Elapsed()
	time.Sleep(5 * time.Millisecond)
	second := c.Elapsed()

	assert.GreaterOrEqual(t, first, 0.0)
	assert.Greater(t, second, first)
}

func TestManual(t *testing.T) {
	c := NewManual()
	assert.Equal(t, 0.0, c.Elapsed())

	c.Advance(250 * time.Millisecond)
	c.Advance(-time.Second)
	assert.InDelta(t, 0.25, c.Elapsed(), 1e-12)

	c.Set(2 * time.Second)
	assert.InDelta(t, 2.0, c.Elapsed(), 1e-12)

	c.Set(time.Second)
	assert.InDelta(t, 2.0, c.Elapsed(), 1e-12)
}

var (
	_ Clock = (*Real)(nil)
	_ Clock = (*Manual)(nil)
)
