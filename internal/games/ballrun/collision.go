package ballrun

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Contact reports what one collision pass resolved.
type Contact struct {
	Landed     bool  // Touched down after being airborne
	AutoJumped bool  // A buffered jump fired on touchdown
	LeftGround bool  // Lost support this step
	Died       bool  // Fell below the play area
	Collected  []int // Collectible ids picked up this step
}

// Resolver tests the actor against platforms and collectibles once per step.
type Resolver struct {
	cfg      config.CollisionConfig
	physics  Physics
	radius   float64
	surfaceY float64
	deathY   float64
	pickupY  float64
}

// NewResolver creates a collision resolver from the runner config.
func NewResolver(cfg config.RunnerConfig, physics Physics) Resolver {
	return Resolver{
		cfg:      cfg.Collision,
		physics:  physics,
		radius:   cfg.Actor.Radius,
		surfaceY: cfg.World.SurfaceY,
		deathY:   cfg.World.ViewHeight + cfg.Collision.DeathMargin,
		pickupY:  cfg.World.SurfaceY - cfg.World.CollectibleOffset,
	}
}

// RestY returns the actor center height when resting on a platform.
func (r Resolver) RestY() float64 {
	return r.surfaceY - r.radius
}

// Resolve runs after integration. x is the actor's world X (the camera offset).
func (r Resolver) Resolve(a *Actor, x float64, w *World) Contact {
	var contact Contact

	box := core.BoxAround(x, a.Y, r.radius, r.radius)
	supported := false
	wasGrounded := a.OnGround

	for _, seg := range w.Segments() {
		if !box.OverlapsSpan(seg.Left(), seg.Right()) {
			continue
		}

		// The tolerance band absorbs fixed-step overshoot: a falling ball
		// that passed the surface by less than one band still lands.
		penetration := box.MaxY - r.surfaceY
		if penetration >= 0 && penetration <= r.cfg.LandingTolerance && a.VY >= 0 {
			r.physics.land(a, r.RestY())
			contact.Landed = !wasGrounded
			supported = true
			if r.physics.consumeBuffer(a) {
				contact.AutoJumped = true
			}
			break
		}

		if math.Abs(a.Y-a.LastGroundedY) <= r.cfg.GroundEpsilon {
			supported = true
		}
	}

	if !supported && a.OnGround {
		r.physics.leaveGround(a)
		contact.LeftGround = true
	}

	if a.Y > r.deathY {
		contact.Died = true
		return contact
	}

	for i, c := range w.collectibles {
		if c.Collected {
			continue
		}
		if math.Abs(c.X-x) < r.cfg.PickupDX && math.Abs(r.pickupY-a.Y) < r.cfg.PickupDY {
			w.collect(i)
			contact.Collected = append(contact.Collected, c.ID)
		}
	}

	return contact
}
