// Package stopwatch measures elapsed wall time with an injectable clock.
package stopwatch

import (
	"fmt"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Stopwatch records a start and stop instant.
type Stopwatch struct {
	now     Clock
	start   time.Time
	stop    time.Time
	running bool
}

// New returns a stopwatch reading now. A nil clock uses time.Now.
func New(now Clock) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start begins (or restarts) timing.
func (s *Stopwatch) Start() {
	s.start = s.now()
	s.running = true
}

// Stop ends timing. Stopping a stopwatch that is not running is a no-op.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.stop = s.now()
	s.running = false
}

// Elapsed returns the measured duration; while running it measures up to now.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.start)
	}
	return s.stop.Sub(s.start)
}

// Format renders d as hh:mm:ss.cc.
func Format(d time.Duration) string {
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	sec := int(d % time.Minute / time.Second)
	cs := int(d % time.Second / (10 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d:%02d.%02d", h, m, sec, cs)
}

// Converge adds a halving increment to seed iterations times. The result
// approaches seed+2.
func Converge(seed float64, iterations int) float64 {
	inc := 1.0
	for i := 0; i < iterations; i++ {
		seed += inc
		inc /= 2.0
	}
	return seed
}
