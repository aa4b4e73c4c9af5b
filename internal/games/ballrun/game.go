// Package ballrun implements the rolling-ball runner: a fixed-timestep
// simulation of a ball crossing procedurally generated platforms.
package ballrun

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// GameID is the registry identifier of the runner.
const GameID = "ballrun"

// Game owns all state of the current run. It is the single mutator of the
// simulation; hosts call it from one goroutine only.
type Game struct {
	cfg      config.RunnerConfig
	runtime  core.RuntimeConfig
	physics  Physics
	resolver Resolver
	ramp     config.SpeedRamp

	clock   *core.FixedClock // Simulation steps, running phase only
	fxClock *core.FixedClock // Cosmetic steps while not running

	phase  core.Phase
	paused bool
	tick   uint64
	runs   int

	actor     Actor
	world     *World
	particles *ParticlePool
	events    core.EventQueue
	rng       *rand.Rand // Gameplay randomness (world generation)
	fxRng     *rand.Rand // Cosmetic randomness

	cameraX    float64
	speed      float64
	score      float64
	finalScore int
	stats      core.RunSummary
}

// New creates a runner with the given configuration.
func New(cfg config.RunnerConfig) *Game {
	physics := NewPhysics(cfg.Physics, cfg.Timing)
	g := &Game{
		cfg:       cfg,
		runtime:   core.DefaultConfig(),
		physics:   physics,
		resolver:  NewResolver(cfg, physics),
		ramp:      config.NewSpeedRamp(cfg.Speed),
		clock:     core.NewFixedClock(cfg.Clock.TickRate, cfg.Clock.MaxCatchUpSteps),
		fxClock:   core.NewFixedClock(cfg.Clock.TickRate, cfg.Clock.MaxCatchUpSteps),
		particles: NewParticlePool(cfg.Effects.MaxParticles, cfg.Physics.Gravity/3),
	}
	g.world = NewWorld(cfg.World, cfg.Effects.CollectFade, rand.New(rand.NewSource(0)))
	g.Reset(g.runtime)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ball Runner"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Reset returns to the idle phase with a freshly built world, so the start
// prompt is drawn over the opening platforms.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runs = 0
	g.paused = false
	g.rebuild()
	g.phase = core.PhaseIdle
	g.events.Drain()
}

// Start begins a new run from any phase, discarding the previous one.
func (g *Game) Start() {
	g.runs++
	g.rebuild()
	g.phase = core.PhaseRunning
	g.events.Emit(core.EventStarted, g.tick, 0)
}

// rebuild constructs every run entity from scratch.
func (g *Game) rebuild() {
	// The idle preview and the first run share a layout.
	seed := g.runtime.Seed + int64(max(g.runs-1, 0))
	g.rng = rand.New(rand.NewSource(seed))
	g.fxRng = rand.New(rand.NewSource(seed ^ 0x5eed))

	g.world.Reset(g.rng)
	g.actor = Actor{
		Y:                   g.resolver.RestY(),
		OnGround:            true,
		DoubleJumpAvailable: true,
		Coyote:              g.cfg.Timing.CoyoteFrames,
		LastGroundedY:       g.resolver.RestY(),
	}
	g.particles.Clear()
	g.clock.Reset()
	g.fxClock.Reset()

	g.tick = 0
	g.paused = false
	g.cameraX = 0
	g.speed = g.ramp.Initial()
	g.score = 0
	g.finalScore = 0
	g.stats = core.RunSummary{Run: g.runs, Seed: seed}
}

// Jump delivers one jump press at wall-clock time now. When no run is
// active the press starts one instead.
func (g *Game) Jump(now time.Time) {
	if g.phase != core.PhaseRunning {
		g.Start()
		return
	}
	if g.paused {
		return
	}

	switch g.physics.Jump(&g.actor, now) {
	case JumpPrimary:
		g.stats.Jumps++
		g.events.Emit(core.EventJumped, g.tick, 0)
	case JumpDouble:
		g.stats.DoubleJumps++
		g.events.Emit(core.EventDoubleJumped, g.tick, 0)
	}
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.paused = !g.paused
	g.clock.Drop()
}

// Advance applies the presses of one host tick in order, then feeds the
// real elapsed time to the fixed-step clock.
func (g *Game) Advance(delta time.Duration, in core.InputFrame) core.StepResult {
	for _, p := range in.Presses {
		switch p.Action {
		case core.ActionJump:
			g.Jump(p.At)
		case core.ActionRestart:
			if g.phase != core.PhaseRunning {
				g.Start()
			}
		case core.ActionPause:
			g.TogglePause()
		}
	}

	steps := 0
	switch {
	case g.phase == core.PhaseRunning && g.paused:
		g.clock.Drop()
	case g.phase == core.PhaseRunning:
		steps = g.clock.Advance(delta, g.Step)
	default:
		g.fxClock.Advance(delta, g.stepEffects)
	}

	return core.StepResult{
		State:  g.State(),
		Steps:  steps,
		Events: g.events.Drain(),
	}
}

// Step runs exactly one fixed simulation step. It does nothing outside the
// running phase.
func (g *Game) Step() {
	if g.phase != core.PhaseRunning || g.paused {
		return
	}
	g.tick++

	g.speed = g.ramp.Next(g.speed)
	g.cameraX += g.speed

	g.physics.Integrate(&g.actor)
	g.actor.Roll = math.Mod(g.actor.Roll+g.speed/g.cfg.Actor.Radius, 2*math.Pi)

	contact := g.resolver.Resolve(&g.actor, g.cameraX, g.world)
	if contact.Landed {
		g.events.Emit(core.EventLanded, g.tick, 0)
	}
	if contact.AutoJumped {
		g.stats.Jumps++
		g.events.Emit(core.EventJumped, g.tick, 0)
	}
	if contact.Died {
		g.die()
		return
	}
	for _, id := range contact.Collected {
		g.score += g.cfg.Scoring.CollectibleBonus
		g.stats.Collected++
		g.events.Emit(core.EventCollected, g.tick, id)
	}

	g.world.EnsureFrontier(g.cameraX)
	g.world.Retire(g.cameraX)
	g.world.UpdateFades()

	g.score += g.speed / g.cfg.Scoring.DistanceDivisor

	DecayTimers(&g.actor)
	g.stepAmbient()
	g.particles.Update()
}

// die ends the run: speed and generation freeze, the final score is kept and
// the ball shatters.
func (g *Game) die() {
	g.phase = core.PhaseEnded
	g.paused = false
	g.finalScore = g.intScore()
	g.clock.Reset()
	g.fxClock.Reset()

	g.particles.Burst(g.fxRng, g.cfg.Actor.ScreenX, g.actor.Y,
		g.cfg.Effects.BurstCount, g.cfg.Effects.ParticleLife)
	g.events.Emit(core.EventDied, g.tick, 0)
}

// stepAmbient occasionally kicks up dust behind the rolling ball.
func (g *Game) stepAmbient() {
	if !g.actor.OnGround || g.fxRng.Float64() >= g.cfg.Effects.AmbientChance {
		return
	}
	x := g.cfg.Actor.ScreenX - g.cfg.Actor.Radius
	y := g.cfg.World.SurfaceY - 1
	g.particles.Spawn(x, y, -g.speed/2, -1-g.fxRng.Float64(), 1.5, g.cfg.Effects.ParticleLife/2)
}

// stepEffects advances cosmetic state while the simulation is stopped.
func (g *Game) stepEffects() {
	g.particles.Update()
	g.world.UpdateFades()
}

// DrainEvents returns events emitted outside Advance, e.g. by Jump.
func (g *Game) DrainEvents() []core.Event {
	return g.events.Drain()
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.intScore()
	if g.phase == core.PhaseEnded {
		score = g.finalScore
	}
	return core.GameState{
		Score:    score,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseEnded,
		Paused:   g.paused,
	}
}

// Summary returns journal data for the current or last run.
func (g *Game) Summary() core.RunSummary {
	s := g.stats
	s.Ticks = g.tick
	s.Distance = g.cameraX
	s.Score = g.State().Score
	return s
}

func (g *Game) intScore() int {
	return int(math.Floor(g.score))
}

func init() {
	registry.Register(GameID, "Ball Runner", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadRunner(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, config.ParsePreset(opts.Difficulty))
		return New(cfg), nil
	})
}
