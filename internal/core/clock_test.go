package core

import (
	"testing"
	"time"
)

func TestFixedClockStepDuration(t *testing.T) {
	c := NewFixedClock(60, 0)
	if c.Step() != time.Second/60 {
		t.Errorf("Step() = %v, expected %v", c.Step(), time.Second/60)
	}
}

func TestFixedClockAccumulates(t *testing.T) {
	c := NewFixedClock(60, 0)
	calls := 0
	fn := func() { calls++ }

	// Less than one step runs nothing
	if n := c.Advance(10*time.Millisecond, fn); n != 0 {
		t.Errorf("Advance(10ms) ran %d steps, expected 0", n)
	}

	// Accumulated 20ms crosses one step
	if n := c.Advance(10*time.Millisecond, fn); n != 1 {
		t.Errorf("Advance(10ms) ran %d steps, expected 1", n)
	}

	// Exactly three steps
	c.Reset()
	calls = 0
	if n := c.Advance(3*c.Step(), fn); n != 3 || calls != 3 {
		t.Errorf("Advance(3 steps) ran %d steps (%d calls), expected 3", n, calls)
	}
	if c.Alpha() != 0 {
		t.Errorf("Alpha() = %v after whole steps, expected 0", c.Alpha())
	}

	// Half a step stays in the accumulator
	c.Advance(c.Step()/2, fn)
	if a := c.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("Alpha() = %v after half a step, expected 0.5", a)
	}
}

func TestFixedClockJitterIndependence(t *testing.T) {
	// Same total real time delivered with different cadence yields the same step count
	steady := NewFixedClock(60, 0)
	jittery := NewFixedClock(60, 0)
	steadySteps, jitterySteps := 0, 0

	for i := 0; i < 60; i++ {
		steadySteps += steady.Advance(steady.Step(), func() {})
	}
	deltas := []time.Duration{5 * time.Millisecond, 40 * time.Millisecond, 1 * time.Millisecond}
	var sum time.Duration
	for i := 0; sum < 60*jittery.Step(); i++ {
		d := deltas[i%len(deltas)]
		if sum+d > 60*jittery.Step() {
			d = 60*jittery.Step() - sum
		}
		sum += d
		jitterySteps += jittery.Advance(d, func() {})
	}

	if steadySteps != jitterySteps {
		t.Errorf("step counts differ: steady=%d jittery=%d", steadySteps, jitterySteps)
	}
}

func TestFixedClockCatchUpCap(t *testing.T) {
	c := NewFixedClock(60, 5)
	calls := 0

	// A 2 second stall would need 120 steps
	n := c.Advance(2*time.Second, func() { calls++ })
	if n != 5 || calls != 5 {
		t.Errorf("Advance after stall ran %d steps, expected cap of 5", n)
	}
	if c.Alpha() != 0 {
		t.Errorf("backlog should be dropped after hitting the cap, alpha = %v", c.Alpha())
	}

	// Next normal frame behaves normally
	if n := c.Advance(c.Step(), func() {}); n != 1 {
		t.Errorf("Advance after cap ran %d steps, expected 1", n)
	}
}

func TestFixedClockIgnoresNegativeDelta(t *testing.T) {
	c := NewFixedClock(60, 0)
	c.Advance(-time.Second, func() { t.Error("negative delta should not run steps") })
	if c.Alpha() != 0 {
		t.Errorf("negative delta changed accumulator, alpha = %v", c.Alpha())
	}
}

func TestFixedClockDrop(t *testing.T) {
	c := NewFixedClock(60, 0)
	c.Advance(c.Step()/2, func() {})
	c.Drop()
	if n := c.Advance(c.Step()/2, func() {}); n != 0 {
		t.Errorf("Drop should discard accumulated time, ran %d steps", n)
	}
}
