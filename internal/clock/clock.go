// Package clock supplies the time source the update loop reads.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock.
type Real struct{}

func NewReal() *Real {
	return &Real{}
}

// Now returns time.Now, which carries a monotonic reading.
func (Real) Now() time.Time {
	return time.Now()
}

// Mock only moves when told to. It is safe for concurrent use.
type Mock struct {
	mu      sync.RWMutex
	current time.Time
}

func NewMock(start time.Time) *Mock {
	return &Mock{current: start}
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime jumps to t, backwards included.
func (m *Mock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance adds d to the current time.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Ticker measures elapsed time since a fixed start and the gap between
// consecutive reads.
type Ticker struct {
	clock Clock
	start time.Time
	last  time.Time
}

// NewTicker starts measuring from c.Now().
func NewTicker(c Clock) *Ticker {
	now := c.Now()
	return &Ticker{clock: c, start: now, last: now}
}

// Tick returns the time since start and the time since the previous Tick.
func (t *Ticker) Tick() (elapsed, dt time.Duration) {
	now := t.clock.Now()
	dt = now.Sub(t.last)
	if dt < 0 {
		dt = 0
	}
	t.last = now
	return now.Sub(t.start), dt
}

// Start returns when the ticker started.
func (t *Ticker) Start() time.Time {
	return t.start
}
