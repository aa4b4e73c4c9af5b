package ballrun

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Autopilot plays the runner headlessly: it jumps near platform edges and
// spends the double jump late in the tap window when the ballistic path
// would miss the next platform.
type Autopilot struct {
	// EdgeSteps is how many steps of travel before the edge the primary jump fires.
	EdgeSteps float64

	jumpTick uint64
	jumped   bool
}

// NewAutopilot returns an autopilot with default timing.
func NewAutopilot() *Autopilot {
	return &Autopilot{EdgeSteps: 2}
}

// Decide returns true when the pilot wants to tap jump before the next step.
// windowSteps is the double jump window expressed in fixed steps.
func (a *Autopilot) Decide(g *Game, windowSteps uint64) bool {
	if g.phase != core.PhaseRunning {
		return false
	}
	actor := g.actor

	if actor.OnGround || actor.Coyote > 0 {
		a.jumped = false
		seg, ok := g.world.SegmentAt(g.cameraX)
		// Over a gap means the coyote window is still open.
		if ok && seg.Right()+g.cfg.Actor.Radius-g.cameraX > g.speed*a.EdgeSteps {
			return false
		}
		a.jumped = true
		a.jumpTick = g.tick
		return true
	}

	if !a.jumped || !actor.DoubleJumpAvailable {
		return false
	}
	// Tap as late as the window allows: the double jump replaces velocity,
	// so firing early would throw away the primary impulse.
	if windowSteps < 3 || g.tick-a.jumpTick != windowSteps-2 {
		return false
	}
	a.jumped = false
	return !g.predictLanding(actor)
}

// predictLanding integrates a copy of the actor with the current speed and
// reports whether it touches down on an existing segment before dying.
func (g *Game) predictLanding(a Actor) bool {
	x := g.cameraX
	surface := g.cfg.World.SurfaceY
	r := g.cfg.Actor.Radius
	for i := 0; i < 600; i++ {
		x += g.speed
		g.physics.Integrate(&a)
		pen := a.Y + r - surface
		if pen >= 0 && a.VY >= 0 {
			if pen > g.cfg.Collision.LandingTolerance {
				return false
			}
			box := core.BoxAround(x, a.Y, r, r)
			for _, seg := range g.world.Segments() {
				if box.OverlapsSpan(seg.Left(), seg.Right()) {
					return true
				}
			}
		}
	}
	return false
}

// SimResult summarizes a headless simulation.
type SimResult struct {
	Summary core.RunSummary
	Final   Snapshot
	Events  []core.Event
	Died    bool
}

// Simulate starts a run and drives it for up to steps fixed steps with
// virtual time, feeding presses from pilot (nil means no input). It stops
// early when the run ends.
func Simulate(g *Game, steps int, pilot *Autopilot) SimResult {
	step := time.Second / time.Duration(g.cfg.Clock.TickRate)
	windowSteps := uint64(g.cfg.Timing.DoubleJumpWindow / step)
	now := time.Unix(0, 0)

	var res SimResult
	g.Start()
	res.Events = append(res.Events, g.DrainEvents()...)

	in := core.NewInputFrame()
	for i := 0; i < steps && g.phase == core.PhaseRunning; i++ {
		in.Clear()
		if pilot != nil && pilot.Decide(g, windowSteps) {
			in.Push(core.ActionJump, now)
		}
		out := g.Advance(step, in)
		res.Events = append(res.Events, out.Events...)
		now = now.Add(step)
	}

	res.Died = g.phase == core.PhaseEnded
	res.Summary = g.Summary()
	res.Final = g.Snapshot()
	return res
}
