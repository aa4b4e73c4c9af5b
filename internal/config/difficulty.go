package config

import "github.com/vovakirdan/tui-runner/internal/core"

// ApplyPreset modifies the speed ramp for a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 3.0
		cfg.Speed.Increment = 0.001
		cfg.Speed.Max = 7
	case DifficultyNormal:
		// Loaded values are the normal curve.
	case DifficultyHard:
		cfg.Speed.Initial = 5.0
		cfg.Speed.Increment = 0.004
		cfg.Speed.Max = 13
	case DifficultyFixed:
		cfg.Speed.Increment = 0
		cfg.Speed.Max = cfg.Speed.Initial
	}
}

// SpeedRamp advances scroll speed by a fixed increment per step up to a cap,
// independent of player input.
type SpeedRamp struct {
	cfg SpeedConfig
}

// NewSpeedRamp creates a ramp for the given speed settings.
func NewSpeedRamp(cfg SpeedConfig) SpeedRamp {
	return SpeedRamp{cfg: cfg}
}

// Initial returns the starting speed of a run.
func (r SpeedRamp) Initial() float64 {
	return r.cfg.Initial
}

// Next returns the speed for the step following one at the given speed.
func (r SpeedRamp) Next(speed float64) float64 {
	if speed >= r.cfg.Max {
		return speed
	}
	next := speed + r.cfg.Increment
	if next > r.cfg.Max {
		next = r.cfg.Max
	}
	return next
}

// Level returns progress through the ramp, 0 at the initial speed and 1 at the cap.
func (r SpeedRamp) Level(speed float64) float64 {
	span := r.cfg.Max - r.cfg.Initial
	if span <= 0 {
		return 1
	}
	return core.ClampF((speed-r.cfg.Initial)/span, 0, 1)
}
