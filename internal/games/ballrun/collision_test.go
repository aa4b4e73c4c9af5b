package ballrun

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestResolver() (Resolver, *World) {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg.World, cfg.Effects.CollectFade, rand.New(rand.NewSource(1)))
	w.segments = []Segment{{ID: 1, Center: 0, Width: 600, Kind: KindSafe}}
	return NewResolver(cfg, NewPhysics(cfg.Physics, cfg.Timing)), w
}

func TestRestingActorStaysGrounded(t *testing.T) {
	r, w := newTestResolver()
	a := Actor{Y: r.RestY(), OnGround: true, DoubleJumpAvailable: true, LastGroundedY: r.RestY()}

	for step := 0; step < 120; step++ {
		r.physics.Integrate(&a)
		c := r.Resolve(&a, 0, w)
		if !a.OnGround {
			t.Fatalf("step %d: resting actor lost ground", step)
		}
		if a.Y != r.RestY() || a.VY != 0 {
			t.Fatalf("step %d: actor at y=%v vy=%v, expected rest", step, a.Y, a.VY)
		}
		if c.Landed {
			t.Fatalf("step %d: resting should not report a new landing", step)
		}
		DecayTimers(&a)
	}
}

func TestLandingWithinTolerance(t *testing.T) {
	r, w := newTestResolver()
	a := Actor{Y: r.RestY() - 5, VY: 20}

	r.physics.Integrate(&a) // Overshoots the surface by 15
	c := r.Resolve(&a, 0, w)

	if !c.Landed || !a.OnGround {
		t.Fatal("fast fall inside the tolerance band should land")
	}
	if a.Y != r.RestY() || a.VY != 0 {
		t.Errorf("landing should snap to surface, got y=%v vy=%v", a.Y, a.VY)
	}
	if !a.DoubleJumpAvailable || a.Coyote != 6 || a.LastGroundedY != r.RestY() {
		t.Errorf("landing should refresh jump state, got %+v", a)
	}
}

func TestNoLandingOutsideBand(t *testing.T) {
	tests := []struct {
		name string
		dy   float64 // Offset of the actor center below the rest height
		vy   float64
	}{
		{"too deep", 30, 5},
		{"moving up through band", 5, -3},
		{"above surface", -10, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, w := newTestResolver()
			a := Actor{Y: r.RestY() + tc.dy, VY: tc.vy, LastGroundedY: 0}
			c := r.Resolve(&a, 0, w)
			if c.Landed || a.OnGround {
				t.Errorf("should not land (y=%v vy=%v)", a.Y, a.VY)
			}
		})
	}
}

func TestLeavingPlatformStartsCoyote(t *testing.T) {
	r, w := newTestResolver()
	a := Actor{Y: r.RestY(), OnGround: true, LastGroundedY: r.RestY()}

	// Segment spans [-300, 300]; the ball box at x=316 is [301, 331].
	c := r.Resolve(&a, 316, w)

	if !c.LeftGround || a.OnGround {
		t.Fatal("actor past the edge should become airborne")
	}
	if a.Coyote != 6 {
		t.Errorf("coyote timer = %d, expected 6", a.Coyote)
	}
}

func TestBufferedJumpFiresOnLanding(t *testing.T) {
	r, w := newTestResolver()
	a := Actor{Y: r.RestY() - 4, VY: 6, JumpBuffer: 3}

	r.physics.Integrate(&a)
	c := r.Resolve(&a, 0, w)

	if !c.Landed || !c.AutoJumped {
		t.Fatalf("expected landing with auto-jump, got %+v", c)
	}
	if a.VY != -14 || a.OnGround {
		t.Errorf("auto-jump should fire the primary jump, got vy=%v grounded=%v", a.VY, a.OnGround)
	}
	if a.JumpBuffer != 0 {
		t.Errorf("jump buffer should be consumed, got %d", a.JumpBuffer)
	}
}

func TestThirdTapBuffersUntilLanding(t *testing.T) {
	r, w := newTestResolver()
	a := Actor{Y: r.RestY(), OnGround: true, DoubleJumpAvailable: true, LastGroundedY: r.RestY()}
	now := time.Now()

	if got := r.physics.Jump(&a, now); got != JumpPrimary {
		t.Fatalf("first tap = %v, expected primary", got)
	}
	if got := r.physics.Jump(&a, now.Add(100*time.Millisecond)); got != JumpDouble {
		t.Fatalf("second tap = %v, expected double", got)
	}

	// Falling back just above the platform.
	a.Y = r.RestY() - 5
	a.VY = 10
	if got := r.physics.Jump(&a, now.Add(150*time.Millisecond)); got != JumpBuffered {
		t.Fatalf("third tap = %v, expected buffered", got)
	}
	if a.VY != 10 {
		t.Errorf("third tap changed airborne velocity to %v", a.VY)
	}

	r.physics.Integrate(&a)
	c := r.Resolve(&a, 0, w)
	if !c.Landed || !c.AutoJumped {
		t.Fatalf("landing inside the buffer should auto-jump, got %+v", c)
	}
	if a.VY != -14 || !a.DoubleJumpAvailable {
		t.Errorf("auto-jump should be a fresh primary jump, got vy=%v double=%v", a.VY, a.DoubleJumpAvailable)
	}
}

func TestTerminalFallCannotTunnel(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	r, w := newTestResolver()

	// Every start height inside one terminal step above rest must land.
	for dy := 0.5; dy <= cfg.Physics.TerminalVelocity; dy += 0.5 {
		a := Actor{Y: r.RestY() - dy, VY: cfg.Physics.TerminalVelocity}
		r.physics.Integrate(&a)
		if c := r.Resolve(&a, 0, w); !c.Landed {
			t.Fatalf("fall from %v above rest at terminal velocity passed through, y=%v", dy, a.Y)
		}
	}
}

func TestFirstLandingWins(t *testing.T) {
	r, w := newTestResolver()
	w.segments = append(w.segments, Segment{ID: 2, Center: 310, Width: 20})
	a := Actor{Y: r.RestY() - 2, VY: 4, JumpBuffer: 2}

	r.physics.Integrate(&a)
	c := r.Resolve(&a, 300, w) // Box overlaps both segments

	if !c.Landed || !c.AutoJumped {
		t.Fatalf("expected one landing with auto-jump, got %+v", c)
	}
	if a.VY != -14 {
		t.Errorf("a second landing must not cancel the auto-jump, vy=%v", a.VY)
	}
}

func TestDeathStopsCollisionWork(t *testing.T) {
	r, w := newTestResolver()
	w.collectibles = []Collectible{{ID: 5, X: 0, Opacity: 1}}
	a := Actor{Y: 901, VY: 20}

	c := r.Resolve(&a, 0, w)

	if !c.Died {
		t.Fatal("actor below view height + margin should die")
	}
	if len(c.Collected) != 0 || w.collectibles[0].Collected {
		t.Error("no pickup should happen after death")
	}
}

func TestCollectiblePickedUpOnce(t *testing.T) {
	r, w := newTestResolver()
	w.collectibles = []Collectible{{ID: 7, SegmentID: 1, X: 10, Opacity: 1}}
	a := Actor{Y: r.RestY(), OnGround: true, LastGroundedY: r.RestY()}

	c := r.Resolve(&a, 0, w)
	if len(c.Collected) != 1 || c.Collected[0] != 7 {
		t.Fatalf("expected collectible 7 picked up, got %v", c.Collected)
	}
	if !w.collectibles[0].Collected {
		t.Error("collectible should be marked collected")
	}

	c = r.Resolve(&a, 0, w)
	if len(c.Collected) != 0 {
		t.Errorf("collected item must be inert, got %v", c.Collected)
	}
}

func TestCollectibleOutOfReach(t *testing.T) {
	r, w := newTestResolver()
	w.collectibles = []Collectible{{ID: 8, X: 0, Opacity: 1}}

	// Too far horizontally
	a := Actor{Y: r.RestY(), OnGround: true, LastGroundedY: r.RestY()}
	if c := r.Resolve(&a, 40, w); len(c.Collected) != 0 {
		t.Error("collectible 40 units away should not be picked up")
	}

	// High in a jump: expected height 500, actor at 400
	a = Actor{Y: 400, VY: -5}
	if c := r.Resolve(&a, 0, w); len(c.Collected) != 0 {
		t.Error("collectible far below the actor should not be picked up")
	}
}
