package core

import "time"

// TimeSource supplies the current time.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real wall clock.
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a TimeSource that only moves when told to.
// Used by tests to drive time-gated simulation deterministically.
type ManualTime struct {
	now time.Time
}

// NewManualTime creates a manual time source starting at start.
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

// Now returns the current manual time.
func (m *ManualTime) Now() time.Time {
	return m.now
}

// Advance moves the manual time forward by d.
func (m *ManualTime) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Clock is a pausable game clock layered over a TimeSource.
// While paused, Now is frozen; time spent paused never reaches the game.
// Not safe for concurrent use; games own their clock.
type Clock struct {
	src        TimeSource
	paused     bool
	pausedAt   time.Time
	pausedTime time.Duration
}

// NewClock creates a running clock over src. A nil src uses SystemTime.
func NewClock(src TimeSource) *Clock {
	if src == nil {
		src = SystemTime{}
	}
	return &Clock{src: src}
}

// Now returns the current game time.
func (c *Clock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.pausedTime)
	}
	return c.src.Now().Add(-c.pausedTime)
}

// Pause freezes game time. Pausing a paused clock is a no-op.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.src.Now()
}

// Resume continues game time from where it was paused.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTime += c.src.Now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}
