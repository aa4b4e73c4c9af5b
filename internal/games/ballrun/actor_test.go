package ballrun

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func testPhysics() Physics {
	cfg := config.DefaultRunnerConfig()
	return NewPhysics(cfg.Physics, cfg.Timing)
}

func groundedActor() Actor {
	return Actor{Y: 545, OnGround: true, DoubleJumpAvailable: true, Coyote: 6, LastGroundedY: 545}
}

func TestIntegrateClampsTerminalVelocity(t *testing.T) {
	a := Actor{VY: 19.8}
	Integrate(&a, 0.6, 20)
	if a.VY != 20 {
		t.Errorf("VY = %v, expected clamp to 20", a.VY)
	}
	if a.Y != 20 {
		t.Errorf("Y = %v, expected position to move by clamped velocity", a.Y)
	}

	for i := 0; i < 100; i++ {
		Integrate(&a, 0.6, 20)
		if a.VY > 20 {
			t.Fatalf("step %d: VY = %v exceeds terminal velocity", i, a.VY)
		}
	}
}

func TestJumpThenGravityUntilClamp(t *testing.T) {
	p := testPhysics()
	a := groundedActor()

	if got := p.Jump(&a, time.Unix(0, 0)); got != JumpPrimary {
		t.Fatalf("Jump() = %v, expected primary", got)
	}
	if a.VY != -14 {
		t.Fatalf("VY after jump = %v, expected -14", a.VY)
	}

	prev := a.VY
	for step := 1; step <= 100; step++ {
		p.Integrate(&a)
		expected := math.Min(prev+0.6, 20)
		if math.Abs(a.VY-expected) > 1e-9 {
			t.Fatalf("step %d: VY = %v, expected %v", step, a.VY, expected)
		}
		prev = a.VY
	}
	if a.VY != 20 {
		t.Errorf("VY should settle at terminal velocity 20, got %v", a.VY)
	}
}

func TestPrimaryJumpTransitions(t *testing.T) {
	p := testPhysics()
	a := groundedActor()
	a.DoubleJumpAvailable = false

	p.Jump(&a, time.Unix(10, 0))

	if a.OnGround {
		t.Error("jump should clear OnGround")
	}
	if a.Coyote != 0 {
		t.Errorf("jump should zero coyote timer, got %d", a.Coyote)
	}
	if !a.DoubleJumpAvailable {
		t.Error("jump should arm the double jump")
	}
}

func TestCoyoteJump(t *testing.T) {
	p := testPhysics()
	a := Actor{Y: 560, VY: 2, Coyote: 3}

	if got := p.Jump(&a, time.Unix(0, 0)); got != JumpPrimary {
		t.Errorf("Jump() inside coyote window = %v, expected primary", got)
	}
	if a.VY != -14 {
		t.Errorf("VY = %v, expected -14", a.VY)
	}
}

func TestDoubleJumpWindow(t *testing.T) {
	t0 := time.Unix(100, 0)

	tests := []struct {
		name     string
		second   time.Duration
		expected JumpOutcome
	}{
		{"immediately", time.Millisecond, JumpDouble},
		{"at 299ms", 299 * time.Millisecond, JumpDouble},
		{"at 300ms", 300 * time.Millisecond, JumpBuffered},
		{"at 1s", time.Second, JumpBuffered},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPhysics()
			a := groundedActor()
			p.Jump(&a, t0)
			p.Integrate(&a)

			got := p.Jump(&a, t0.Add(tc.second))
			if got != tc.expected {
				t.Fatalf("second tap = %v, expected %v", got, tc.expected)
			}
			if got == JumpDouble && a.VY != -10 {
				t.Errorf("double jump VY = %v, expected -10", a.VY)
			}
			if got == JumpBuffered && a.JumpBuffer != 8 {
				t.Errorf("missed window should arm the jump buffer, got %d", a.JumpBuffer)
			}
		})
	}
}

func TestThirdTapCannotChain(t *testing.T) {
	p := testPhysics()
	a := groundedActor()
	t0 := time.Unix(0, 0)

	p.Jump(&a, t0)
	if got := p.Jump(&a, t0.Add(100*time.Millisecond)); got != JumpDouble {
		t.Fatalf("second tap = %v, expected double", got)
	}
	p.Integrate(&a)
	vy := a.VY

	if got := p.Jump(&a, t0.Add(150*time.Millisecond)); got == JumpDouble || got == JumpPrimary {
		t.Fatalf("third tap = %v, expected no jump", got)
	}
	if a.VY != vy {
		t.Errorf("third tap changed velocity from %v to %v", vy, a.VY)
	}
	if a.DoubleJumpAvailable {
		t.Error("double jump should stay spent until landing")
	}
}

func TestDecayTimersFloorAtZero(t *testing.T) {
	a := Actor{Coyote: 2, JumpBuffer: 8}
	for i := 0; i < 20; i++ {
		DecayTimers(&a)
		if a.Coyote < 0 || a.JumpBuffer < 0 {
			t.Fatalf("timers went negative: coyote=%d buffer=%d", a.Coyote, a.JumpBuffer)
		}
	}
	if a.Coyote != 0 || a.JumpBuffer != 0 {
		t.Errorf("timers should reach zero, got coyote=%d buffer=%d", a.Coyote, a.JumpBuffer)
	}
}
