package ballrun

import "github.com/vovakirdan/tui-runner/internal/core"

// ActorView is the read-only actor state exposed to presentation.
type ActorView struct {
	X                   float64 // World X, equal to the camera offset
	Y                   float64
	VY                  float64
	OnGround            bool
	DoubleJumpAvailable bool
	Coyote              int
	JumpBuffer          int
	Roll                float64
}

// SegmentView is the presentation copy of a segment.
type SegmentView struct {
	ID     int
	Center float64
	Width  float64
	Kind   SegmentKind
}

// CollectibleView is the presentation copy of a collectible.
type CollectibleView struct {
	ID        int
	SegmentID int
	X         float64
	Collected bool
	Opacity   float64
}

// Snapshot is an immutable copy of the simulation, safe to keep across ticks.
type Snapshot struct {
	Tick         uint64
	Phase        core.Phase
	Paused       bool
	CameraX      float64
	Speed        float64
	Score        int     // Floor of RawScore
	RawScore     float64 // Accumulated fractional score
	Actor        ActorView
	Segments     []SegmentView
	Collectibles []CollectibleView
	Particles    int
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Paused:   g.paused,
		CameraX:  g.cameraX,
		Speed:    g.speed,
		Score:    g.intScore(),
		RawScore: g.score,
		Actor: ActorView{
			X:                   g.cameraX,
			Y:                   g.actor.Y,
			VY:                  g.actor.VY,
			OnGround:            g.actor.OnGround,
			DoubleJumpAvailable: g.actor.DoubleJumpAvailable,
			Coyote:              g.actor.Coyote,
			JumpBuffer:          g.actor.JumpBuffer,
			Roll:                g.actor.Roll,
		},
		Particles: g.particles.Len(),
	}

	segs := g.world.Segments()
	s.Segments = make([]SegmentView, len(segs))
	for i, seg := range segs {
		s.Segments[i] = SegmentView{ID: seg.ID, Center: seg.Center, Width: seg.Width, Kind: seg.Kind}
	}

	cols := g.world.Collectibles()
	s.Collectibles = make([]CollectibleView, len(cols))
	for i, c := range cols {
		s.Collectibles[i] = CollectibleView{
			ID:        c.ID,
			SegmentID: c.SegmentID,
			X:         c.X,
			Collected: c.Collected,
			Opacity:   c.Opacity,
		}
	}

	return s
}
