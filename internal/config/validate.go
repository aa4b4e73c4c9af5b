package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid runner config")

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce < 0, "physics.jump_force must be negative, got %v", c.Physics.JumpForce)
	check(c.Physics.DoubleJumpForce < 0, "physics.double_jump_force must be negative, got %v", c.Physics.DoubleJumpForce)
	check(c.Physics.JumpForce < c.Physics.DoubleJumpForce,
		"physics.double_jump_force (%v) must be weaker than physics.jump_force (%v)",
		c.Physics.DoubleJumpForce, c.Physics.JumpForce)
	check(c.Physics.TerminalVelocity > 0, "physics.terminal_velocity must be positive, got %v", c.Physics.TerminalVelocity)
	check(c.Timing.CoyoteFrames >= 0, "timing.coyote_frames must not be negative")
	check(c.Timing.JumpBufferFrames >= 0, "timing.jump_buffer_frames must not be negative")
	check(c.Actor.Radius > 0, "actor.radius must be positive, got %v", c.Actor.Radius)
	check(c.World.ViewWidth > 0 && c.World.ViewHeight > 0, "world view must have positive size")
	check(c.World.SafeWidth > 0, "world.safe_width must be positive, got %v", c.World.SafeWidth)
	check(len(c.World.Widths) > 0, "world.widths must not be empty")
	for _, w := range c.World.Widths {
		check(w > 0, "world.widths entries must be positive, got %v", w)
	}
	check(len(c.World.Gaps) > 0, "world.gaps must not be empty")
	for _, g := range c.World.Gaps {
		check(g > 0, "world.gaps entries must be positive, got %v", g)
	}
	check(c.World.CollectibleChance >= 0 && c.World.CollectibleChance <= 1,
		"world.collectible_chance must be in [0, 1], got %v", c.World.CollectibleChance)
	// A fall of one step at terminal velocity must stay inside the landing band.
	check(c.Collision.LandingTolerance >= c.Physics.TerminalVelocity,
		"collision.landing_tolerance (%v) must be >= physics.terminal_velocity (%v)",
		c.Collision.LandingTolerance, c.Physics.TerminalVelocity)
	check(c.Scoring.DistanceDivisor > 0, "scoring.distance_divisor must be positive")
	check(c.Speed.Initial > 0, "speed.initial must be positive, got %v", c.Speed.Initial)
	check(c.Speed.Max >= c.Speed.Initial, "speed.max must be >= speed.initial")
	check(c.Clock.TickRate > 0, "clock.tick_rate must be positive, got %d", c.Clock.TickRate)
	check(c.Clock.MaxCatchUpSteps >= 0, "clock.max_catchup_steps must not be negative")
	check(c.Effects.MaxParticles >= 0, "effects.max_particles must not be negative")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
}
