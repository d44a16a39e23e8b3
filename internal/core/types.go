package core

import "time"

// Size describes the dimensions of a screen in pixels.
type Size struct {
	W int
	H int
}

// Clock is the time source consumed by the frame gate.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the wall clock and sleeps with time.Sleep.
type SystemClock struct{}

// Now returns the current time. The value carries a monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for at least d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
