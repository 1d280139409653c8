package engine

import "time"

// TickGate gates discrete animation steps to a wall-clock cadence.
// It is polled from the render path: a step fires only when a render call
// observes that the interval has elapsed, so the visual cadence holds as long
// as rendering runs at least as often as the interval.
type TickGate struct {
	clock    TimeProvider
	interval time.Duration
	last     time.Time
	ticks    uint64
}

// NewTickGate creates a gate stamped with the provider's current time
func NewTickGate(clock TimeProvider, interval time.Duration) *TickGate {
	return &TickGate{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// Poll runs step once and restamps the gate if the interval has elapsed.
// Returns true when step ran.
func (g *TickGate) Poll(step func()) bool {
	now := g.clock.Now()
	if now.Sub(g.last) < g.interval {
		return false
	}
	step()
	g.last = now
	g.ticks++
	return true
}

// Reset restamps the gate without stepping
func (g *TickGate) Reset() {
	g.last = g.clock.Now()
}

// Last returns the time of the most recent step (or construction/reset)
func (g *TickGate) Last() time.Time {
	return g.last
}

// Interval returns the configured cadence
func (g *TickGate) Interval() time.Duration {
	return g.interval
}

// Ticks returns the number of steps fired
func (g *TickGate) Ticks() uint64 {
	return g.ticks
}
