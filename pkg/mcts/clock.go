package mcts

import "time"

// Clock is a reentrant stopwatch: it accumulates elapsed wall-clock time across nested Start/Stop
// calls (the solver's main loop and any user code it calls both use the same instance without
// needing to coordinate who "owns" timing).
type Clock struct {
	start   time.Time
	elapsed time.Duration
	tracks  int
}

// NewClock returns a fresh, stopped Clock.
func NewClock() *Clock {
	return &Clock{}
}

// IsActive reports whether the clock is currently tracking time.
func (c *Clock) IsActive() bool {
	return c.tracks > 0
}

// Elapsed returns the total elapsed time in seconds. While active, the value increases
// monotonically on every call; while stopped, it holds steady.
func (c *Clock) Elapsed() float64 {
	if c.tracks > 0 {
		return (c.elapsed + time.Since(c.start)).Seconds()
	}
	return c.elapsed.Seconds()
}

// Start begins (or, if already active, nests into) timing.
func (c *Clock) Start() {
	if c.tracks == 0 {
		c.start = time.Now()
	}
	c.tracks++
}

// Stop ends the innermost active timing span; only once tracks drops to zero is the elapsed
// duration actually folded in.
func (c *Clock) Stop() {
	if c.tracks == 0 {
		return
	}
	c.tracks--
	if c.tracks == 0 {
		c.elapsed += time.Since(c.start)
	}
}

// Reset zeroes the clock. force is required if the clock is currently active.
func (c *Clock) Reset(force bool) {
	if c.tracks > 0 && !force {
		panic("mcts: cannot reset an active clock without force")
	}
	c.start = time.Time{}
	c.elapsed = 0
	c.tracks = 0
}
