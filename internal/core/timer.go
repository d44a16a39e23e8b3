package core

import "time"

// DefaultFrameInterval is the minimum spacing between admitted frames (~20 Hz).
const DefaultFrameInterval = 50 * time.Millisecond

// FrameGate admits at most one frame per interval. The timestamp of the last
// admitted frame is recorded at construction and on every admission.
type FrameGate struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewFrameGate constructs a gate reading time from clock. A nil clock uses the
// system clock; a non-positive interval uses DefaultFrameInterval.
func NewFrameGate(clock Clock, interval time.Duration) *FrameGate {
	if clock == nil {
		clock = SystemClock{}
	}
	g := &FrameGate{clock: clock}
	g.SetInterval(interval)
	g.last = clock.Now()
	return g
}

// SetInterval changes the minimum frame spacing. It is safe to call from the
// main loop.
func (g *FrameGate) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultFrameInterval
	}
	g.interval = d
}

// Interval returns the minimum frame spacing.
func (g *FrameGate) Interval() time.Duration { return g.interval }

// Last returns the clock reading of the most recent admission.
func (g *FrameGate) Last() time.Time { return g.last }

// Ready reports whether a frame may run at now without blocking. A frame is
// admitted once strictly more than the interval has passed since the last
// admission, and now becomes the new reference point.
func (g *FrameGate) Ready(now time.Time) bool {
	if now.Sub(g.last) > g.interval {
		g.last = now
		return true
	}
	return false
}

// TryAdvance blocks until the next frame is due and then admits it. It sleeps
// on the gate's clock instead of spinning and always reports true.
func (g *FrameGate) TryAdvance() bool {
	for {
		now := g.clock.Now()
		if g.Ready(now) {
			return true
		}
		// one tick past the deadline, admission is strictly greater-than
		g.clock.Sleep(g.interval - now.Sub(g.last) + time.Nanosecond)
	}
}
