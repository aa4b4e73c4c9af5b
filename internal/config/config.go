// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import "time"

// RunnerConfig contains all tunables of the ball runner simulation.
type RunnerConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Timing    TimingConfig    `yaml:"timing"`
	Actor     ActorConfig     `yaml:"actor"`
	World     WorldConfig     `yaml:"world"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Speed     SpeedConfig     `yaml:"speed"`
	Clock     ClockConfig     `yaml:"clock"`
	Effects   EffectsConfig   `yaml:"effects"`
}

// PhysicsConfig defines per-step vertical dynamics. Negative values point up.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`
	DoubleJumpForce  float64 `yaml:"double_jump_force"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

// TimingConfig defines the forgiving jump windows.
type TimingConfig struct {
	CoyoteFrames     int           `yaml:"coyote_frames"`      // Steps after leaving ground where a jump still counts
	JumpBufferFrames int           `yaml:"jump_buffer_frames"` // Steps a queued jump waits for a landing
	DoubleJumpWindow time.Duration `yaml:"double_jump_window"` // Wall-clock window between taps
}

// ActorConfig defines the rolling ball.
type ActorConfig struct {
	Radius  float64 `yaml:"radius"`
	ScreenX float64 `yaml:"screen_x"` // Horizontal draw position inside the view
}

// WorldConfig defines the view and procedural platform generation.
type WorldConfig struct {
	ViewWidth         float64   `yaml:"view_width"`
	ViewHeight        float64   `yaml:"view_height"`
	SurfaceY          float64   `yaml:"surface_y"`
	SafeWidth         float64   `yaml:"safe_width"`
	WarmupSegments    int       `yaml:"warmup_segments"`
	Widths            []float64 `yaml:"widths"`
	Gaps              []float64 `yaml:"gaps"`
	AheadDistance     float64   `yaml:"ahead_distance"`
	CollectibleChance float64   `yaml:"collectible_chance"`
	CollectibleOffset float64   `yaml:"collectible_offset"`
}

// CollisionConfig defines landing and pickup tolerances.
type CollisionConfig struct {
	LandingTolerance float64 `yaml:"landing_tolerance"`
	GroundEpsilon    float64 `yaml:"ground_epsilon"`
	DeathMargin      float64 `yaml:"death_margin"`
	PickupDX         float64 `yaml:"pickup_dx"`
	PickupDY         float64 `yaml:"pickup_dy"`
}

// ScoringConfig defines how score accrues.
type ScoringConfig struct {
	CollectibleBonus float64 `yaml:"collectible_bonus"`
	DistanceDivisor  float64 `yaml:"distance_divisor"`
}

// SpeedConfig defines the scroll speed ramp, the only difficulty progression.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // Added every step
	Max       float64 `yaml:"max"`
}

// ClockConfig defines the fixed timestep.
type ClockConfig struct {
	TickRate        int `yaml:"tick_rate"`
	MaxCatchUpSteps int `yaml:"max_catchup_steps"`
}

// EffectsConfig defines cosmetic particles and fades.
type EffectsConfig struct {
	MaxParticles  int     `yaml:"max_particles"`
	BurstCount    int     `yaml:"burst_count"`
	ParticleLife  int     `yaml:"particle_life"`
	CollectFade   int     `yaml:"collect_fade"`
	AmbientChance float64 `yaml:"ambient_chance"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings
// yield "" which means "keep the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
