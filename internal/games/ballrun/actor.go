package ballrun

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Actor is the rolling ball. Its world X is always the camera offset, so only
// vertical state lives here.
type Actor struct {
	Y                   float64 // Vertical center, grows downward
	VY                  float64 // Vertical velocity per step
	OnGround            bool
	DoubleJumpAvailable bool
	Coyote              int // Steps left where a jump still counts as grounded
	JumpBuffer          int // Steps left where a queued jump fires on landing
	LastGroundedY       float64
	Roll                float64 // Cosmetic rolling angle in radians

	lastTap    time.Time // Zero value is the "no chain" sentinel
	bufferedAt time.Time // Tap time of the queued jump
}

// JumpOutcome is what a jump press resolved to.
type JumpOutcome int

const (
	JumpIgnored JumpOutcome = iota
	JumpPrimary
	JumpDouble
	JumpBuffered
)

// Physics integrates the actor and resolves jump presses.
type Physics struct {
	cfg    config.PhysicsConfig
	timing config.TimingConfig
}

// NewPhysics creates actor physics from config.
func NewPhysics(cfg config.PhysicsConfig, timing config.TimingConfig) Physics {
	return Physics{cfg: cfg, timing: timing}
}

// Integrate advances the actor by one fixed step under gravity.
// Velocity is clamped to the terminal velocity before moving.
func Integrate(a *Actor, gravity, terminalVelocity float64) {
	a.VY += gravity
	if a.VY > terminalVelocity {
		a.VY = terminalVelocity
	}
	a.Y += a.VY
}

// Integrate applies the configured gravity and terminal velocity.
func (p Physics) Integrate(a *Actor) {
	Integrate(a, p.cfg.Gravity, p.cfg.TerminalVelocity)
}

// Jump resolves a jump press at wall-clock time now.
//
// Grounded or inside the coyote window: primary jump. Airborne with the
// double jump armed and the previous tap less than the window ago: double
// jump, and the chain is broken so a third tap cannot fire again. Otherwise
// the press is buffered until the next landing.
func (p Physics) Jump(a *Actor, now time.Time) JumpOutcome {
	if a.OnGround || a.Coyote > 0 {
		p.primaryJump(a, now)
		return JumpPrimary
	}

	if a.DoubleJumpAvailable && !a.lastTap.IsZero() && now.Sub(a.lastTap) < p.timing.DoubleJumpWindow {
		a.VY = p.cfg.DoubleJumpForce
		a.DoubleJumpAvailable = false
		a.lastTap = time.Time{}
		return JumpDouble
	}

	a.JumpBuffer = p.timing.JumpBufferFrames
	a.bufferedAt = now
	return JumpBuffered
}

// consumeBuffer fires a buffered jump on landing. Returns false when nothing
// was queued.
func (p Physics) consumeBuffer(a *Actor) bool {
	if a.JumpBuffer <= 0 {
		return false
	}
	p.primaryJump(a, a.bufferedAt)
	a.JumpBuffer = 0
	return true
}

func (p Physics) primaryJump(a *Actor, now time.Time) {
	a.VY = p.cfg.JumpForce
	a.OnGround = false
	a.Coyote = 0
	a.DoubleJumpAvailable = true
	a.lastTap = now
}

// land snaps the actor onto a surface and refreshes the grounded state.
func (p Physics) land(a *Actor, restY float64) {
	a.Y = restY
	a.VY = 0
	a.OnGround = true
	a.DoubleJumpAvailable = true
	a.Coyote = p.timing.CoyoteFrames
	a.LastGroundedY = restY
}

// leaveGround starts the coyote window after losing support.
func (p Physics) leaveGround(a *Actor) {
	a.OnGround = false
	a.Coyote = p.timing.CoyoteFrames
}

// DecayTimers counts the coyote and jump-buffer windows down by one step,
// never below zero.
func DecayTimers(a *Actor) {
	if a.Coyote > 0 {
		a.Coyote--
	}
	if a.JumpBuffer > 0 {
		a.JumpBuffer--
	}
}
