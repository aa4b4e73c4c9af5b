package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:          0.6,
			JumpForce:        -14,
			DoubleJumpForce:  -10,
			TerminalVelocity: 20,
		},
		Timing: TimingConfig{
			CoyoteFrames:     6,
			JumpBufferFrames: 8,
			DoubleJumpWindow: 300 * time.Millisecond,
		},
		Actor: ActorConfig{
			Radius:  15,
			ScreenX: 100,
		},
		World: WorldConfig{
			ViewWidth:         400,
			ViewHeight:        800,
			SurfaceY:          560,
			SafeWidth:         600,
			WarmupSegments:    5,
			Widths:            []float64{120, 180, 250, 400},
			Gaps:              []float64{100, 150, 200},
			AheadDistance:     200,
			CollectibleChance: 0.3,
			CollectibleOffset: 60,
		},
		Collision: CollisionConfig{
			LandingTolerance: 25,
			GroundEpsilon:    2,
			DeathMargin:      100,
			PickupDX:         30,
			PickupDY:         50,
		},
		Scoring: ScoringConfig{
			CollectibleBonus: 10,
			DistanceDivisor:  100,
		},
		Speed: SpeedConfig{
			Initial:   3.5,
			Increment: 0.002,
			Max:       10,
		},
		Clock: ClockConfig{
			TickRate:        60,
			MaxCatchUpSteps: 5,
		},
		Effects: EffectsConfig{
			MaxParticles:  64,
			BurstCount:    24,
			ParticleLife:  45,
			CollectFade:   20,
			AmbientChance: 0.05,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
