package core

import "time"

// FixedClock is a fixed-timestep accumulator. Real elapsed time is fed in
// through Advance and converted into a whole number of constant-size steps,
// so simulation constants behave the same regardless of host frame jitter.
type FixedClock struct {
	step        time.Duration
	maxSteps    int
	accumulator time.Duration
}

// NewFixedClock creates a clock running tickRate steps per second.
// maxSteps caps the steps run by one Advance call; 0 means no cap.
func NewFixedClock(tickRate, maxSteps int) *FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps < 0 {
		maxSteps = 0
	}
	return &FixedClock{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step returns the fixed step duration.
func (c *FixedClock) Step() time.Duration {
	return c.step
}

// Advance accumulates delta and calls fn once per whole fixed step.
// When the catch-up cap is reached the leftover backlog is dropped, so a
// long stall costs at most maxSteps steps. Negative deltas are ignored.
// Returns the number of steps run.
func (c *FixedClock) Advance(delta time.Duration, fn func()) int {
	if delta > 0 {
		c.accumulator += delta
	}

	steps := 0
	for c.accumulator >= c.step {
		if c.maxSteps > 0 && steps >= c.maxSteps {
			c.accumulator = 0
			break
		}
		fn()
		c.accumulator -= c.step
		steps++
	}
	return steps
}

// Alpha returns the fraction of a step left in the accumulator, in [0, 1).
// Renderers use it to interpolate between the last step and the next.
func (c *FixedClock) Alpha() float64 {
	return float64(c.accumulator) / float64(c.step)
}

// Reset clears the accumulator.
func (c *FixedClock) Reset() {
	c.accumulator = 0
}

// Drop discards accumulated time. Used when the simulation is paused.
func (c *FixedClock) Drop() {
	c.accumulator = 0
}
