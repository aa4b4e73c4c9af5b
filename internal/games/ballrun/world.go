package ballrun

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// SegmentKind classifies a platform. It only affects presentation.
type SegmentKind int

const (
	KindSafe SegmentKind = iota
	KindNarrow
	KindNormal
	KindWide
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case KindSafe:
		return "safe"
	case KindNarrow:
		return "narrow"
	case KindNormal:
		return "normal"
	case KindWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Segment is a platform span on the shared surface line.
type Segment struct {
	ID     int
	Center float64 // World-space horizontal center
	Width  float64
	Kind   SegmentKind
}

// Left returns the world x of the left edge.
func (s Segment) Left() float64 {
	return s.Center - s.Width/2
}

// Right returns the world x of the right edge.
func (s Segment) Right() float64 {
	return s.Center + s.Width/2
}

// Collectible is a pickup centered on a segment.
// Once collected it is inert and only kept while it fades out.
type Collectible struct {
	ID        int
	SegmentID int
	X         float64
	Collected bool
	Opacity   float64

	fade *gween.Tween
}

// World generates platforms ahead of the camera and retires those behind it.
type World struct {
	cfg          config.WorldConfig
	fadeSteps    int
	rng          *rand.Rand
	segments     []Segment
	collectibles []Collectible
	nextID       int
}

// NewWorld creates an empty world. Call Reset to lay out the opening segments.
func NewWorld(cfg config.WorldConfig, fadeSteps int, rng *rand.Rand) *World {
	return &World{
		cfg:          cfg,
		fadeSteps:    fadeSteps,
		rng:          rng,
		segments:     make([]Segment, 0, 16),
		collectibles: make([]Collectible, 0, 8),
	}
}

// Reset discards all entities and lays out the safe starting segment
// centered on the origin followed by the warmup segments.
func (w *World) Reset(rng *rand.Rand) {
	w.rng = rng
	w.segments = w.segments[:0]
	w.collectibles = w.collectibles[:0]
	w.nextID = 0

	w.segments = append(w.segments, Segment{
		ID:     w.id(),
		Center: 0,
		Width:  w.cfg.SafeWidth,
		Kind:   KindSafe,
	})
	for i := 0; i < w.cfg.WarmupSegments; i++ {
		w.appendSegment()
	}
}

// EnsureFrontier appends one segment when the rightmost right edge is closer
// than the ahead distance to the lookahead point (the right edge of the view).
// Returns true if a segment was added.
func (w *World) EnsureFrontier(cameraX float64) bool {
	if len(w.segments) == 0 {
		w.appendSegment()
		return true
	}
	lookahead := cameraX + w.cfg.ViewWidth
	if w.Rightmost().Right()-lookahead >= w.cfg.AheadDistance {
		return false
	}
	w.appendSegment()
	return true
}

// Retire drops segments whose right edge is more than one view width behind
// the camera, and collectibles that are behind it or have finished fading.
func (w *World) Retire(cameraX float64) {
	limit := cameraX - w.cfg.ViewWidth

	kept := w.segments[:0]
	for _, s := range w.segments {
		if s.Right() >= limit {
			kept = append(kept, s)
		}
	}
	w.segments = kept

	keptC := w.collectibles[:0]
	for _, c := range w.collectibles {
		if c.X < limit {
			continue
		}
		if c.Collected && c.fade == nil {
			continue
		}
		keptC = append(keptC, c)
	}
	w.collectibles = keptC
}

// UpdateFades advances the fade-out of collected collectibles by one step.
func (w *World) UpdateFades() {
	for i := range w.collectibles {
		c := &w.collectibles[i]
		if !c.Collected || c.fade == nil {
			continue
		}
		v, done := c.fade.Update(1)
		c.Opacity = float64(v)
		if done {
			c.Opacity = 0
			c.fade = nil
		}
	}
}

// collect marks the collectible at index i as collected and starts its fade.
func (w *World) collect(i int) {
	c := &w.collectibles[i]
	c.Collected = true
	if w.fadeSteps > 0 {
		c.fade = gween.New(1, 0, float32(w.fadeSteps), ease.OutQuad)
	} else {
		c.Opacity = 0
	}
}

// Segments returns the active segments ordered by center.
func (w *World) Segments() []Segment {
	return w.segments
}

// Collectibles returns the active collectibles.
func (w *World) Collectibles() []Collectible {
	return w.collectibles
}

// Rightmost returns the frontier segment.
func (w *World) Rightmost() Segment {
	return w.segments[len(w.segments)-1]
}

// SegmentAt returns the segment whose span contains x, if any.
func (w *World) SegmentAt(x float64) (Segment, bool) {
	for _, s := range w.segments {
		if x >= s.Left() && x <= s.Right() {
			return s, true
		}
	}
	return Segment{}, false
}

// appendSegment places a new segment after the frontier:
// center = previous right edge + gap + half the new width.
func (w *World) appendSegment() {
	width := w.cfg.Widths[w.rng.Intn(len(w.cfg.Widths))]
	gap := w.cfg.Gaps[w.rng.Intn(len(w.cfg.Gaps))]

	prevRight := 0.0
	if len(w.segments) > 0 {
		prevRight = w.Rightmost().Right()
	}

	seg := Segment{
		ID:     w.id(),
		Center: prevRight + gap + width/2,
		Width:  width,
		Kind:   w.kindFor(width),
	}
	w.segments = append(w.segments, seg)

	if w.rng.Float64() < w.cfg.CollectibleChance {
		w.collectibles = append(w.collectibles, Collectible{
			ID:        w.id(),
			SegmentID: seg.ID,
			X:         seg.Center,
			Opacity:   1,
		})
	}
}

func (w *World) kindFor(width float64) SegmentKind {
	lo, hi := w.cfg.Widths[0], w.cfg.Widths[0]
	for _, v := range w.cfg.Widths {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	switch {
	case width == lo && lo != hi:
		return KindNarrow
	case width == hi && lo != hi:
		return KindWide
	default:
		return KindNormal
	}
}

func (w *World) id() int {
	w.nextID++
	return w.nextID
}
