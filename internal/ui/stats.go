package ui

import "time"

// FrameStats measures how often frames are admitted over a sliding window.
type FrameStats struct {
	window time.Duration
	times  []time.Time
	total  uint64
}

// NewFrameStats returns stats averaged over window. A non-positive window
// defaults to one second.
func NewFrameStats(window time.Duration) *FrameStats {
	if window <= 0 {
		window = time.Second
	}
	return &FrameStats{window: window}
}

// Record notes an admission at t.
func (s *FrameStats) Record(t time.Time) {
	s.times = append(s.times, t)
	s.total++
}

// Rate returns admissions per second within the window ending at now.
func (s *FrameStats) Rate(now time.Time) float64 {
	cutoff := now.Add(-s.window)
	drop := 0
	for drop < len(s.times) && !s.times[drop].After(cutoff) {
		drop++
	}
	s.times = append(s.times[:0], s.times[drop:]...)
	return float64(len(s.times)) / s.window.Seconds()
}

// Total returns every admission recorded.
func (s *FrameStats) Total() uint64 { return s.total }
