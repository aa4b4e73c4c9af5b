package ballrun

import (
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Particle is a purely cosmetic point in view space.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Life    int // Steps remaining
	Opacity float64

	fade *gween.Tween
}

// ParticlePool is a bounded set of particles with age-based removal.
// Spawning into a full pool evicts the oldest particle.
type ParticlePool struct {
	items   []Particle
	max     int
	gravity float64
}

// NewParticlePool creates a pool holding at most capacity particles.
func NewParticlePool(capacity int, gravity float64) *ParticlePool {
	return &ParticlePool{
		items:   make([]Particle, 0, max(capacity, 0)),
		max:     capacity,
		gravity: gravity,
	}
}

// Spawn adds a particle that fades from opaque to invisible over life steps.
func (p *ParticlePool) Spawn(x, y, vx, vy, size float64, life int) {
	if p.max <= 0 || life <= 0 {
		return
	}
	if len(p.items) >= p.max {
		copy(p.items, p.items[1:])
		p.items = p.items[:len(p.items)-1]
	}
	p.items = append(p.items, Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Size:    size,
		Life:    life,
		Opacity: 1,
		fade:    gween.New(1, 0, float32(life), ease.OutQuad),
	})
}

// Burst spawns count particles radiating from (x, y) with random speed.
func (p *ParticlePool) Burst(rng *rand.Rand, x, y float64, count, life int) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(max(count, 1))
		angle += (rng.Float64() - 0.5) * 0.4
		speed := 2 + rng.Float64()*4
		size := 2 + rng.Float64()*4
		p.Spawn(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed-2, size, life)
	}
}

// Update moves every particle one step and removes the expired ones.
func (p *ParticlePool) Update() {
	kept := p.items[:0]
	for _, pt := range p.items {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY += p.gravity
		pt.Life--
		if pt.fade != nil {
			v, _ := pt.fade.Update(1)
			pt.Opacity = float64(v)
		}
		if pt.Life <= 0 {
			continue
		}
		kept = append(kept, pt)
	}
	p.items = kept
}

// Clear removes all particles.
func (p *ParticlePool) Clear() {
	p.items = p.items[:0]
}

// Len returns the number of live particles.
func (p *ParticlePool) Len() int {
	return len(p.items)
}

// Particles returns the live particles.
func (p *ParticlePool) Particles() []Particle {
	return p.items
}
