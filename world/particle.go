package world

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cave-copter/parameter"
)

// ParticleKind distinguishes exhaust smoke from crash debris
type ParticleKind uint8

const (
	Smoke ParticleKind = iota
	Debris
)

// Particle is a short-lived cosmetic sprite
type Particle struct {
	Kind    ParticleKind
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
}

// Particles is a pool of live particles updated once per tick
type Particles struct {
	Items []Particle
}

// EmitSmoke adds one exhaust puff at (x, y)
func (p *Particles) EmitSmoke(rng *rand.Rand, x, y float64) {
	p.Items = append(p.Items, Particle{
		Kind:    Smoke,
		X:       x,
		Y:       y,
		VX:      parameter.SmokeDriftX,
		VY:      (rng.Float64() - 0.5) * parameter.SmokeDriftY,
		Size:    parameter.SmokeMinSize + rng.Float64()*parameter.SmokeSizeRange,
		Opacity: parameter.SmokeOpacity,
	})
}

// Explode adds a radial burst of debris centred on (x, y)
func (p *Particles) Explode(rng *rand.Rand, x, y float64) {
	n := parameter.ExplosionParticles
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := parameter.ExplosionMinSpeed + rng.Float64()*parameter.ExplosionSpeedRange
		p.Items = append(p.Items, Particle{
			Kind:    Debris,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    parameter.ExplosionMinSize + rng.Float64()*parameter.ExplosionSizeRange,
			Opacity: 1,
		})
	}
}

// Update moves every particle one tick and compacts out the expired ones
func (p *Particles) Update() {
	live := p.Items[:0]
	for _, it := range p.Items {
		it.X += it.VX
		it.Y += it.VY

		switch it.Kind {
		case Smoke:
			it.Opacity -= parameter.SmokeFade
			it.Size -= parameter.SmokeShrink
			if it.Size <= parameter.SmokeMinSizeCut || it.Opacity <= 0 {
				continue
			}
		case Debris:
			it.VY += parameter.ExplosionGravity
			it.Opacity -= parameter.ExplosionFade
			it.Size *= parameter.ExplosionDecay
			if it.Opacity <= 0 {
				continue
			}
		}
		live = append(live, it)
	}
	p.Items = live
}

// Count returns the number of live particles of kind k
func (p *Particles) Count(k ParticleKind) int {
	n := 0
	for _, it := range p.Items {
		if it.Kind == k {
			n++
		}
	}
	return n
}

// Clear drops every particle
func (p *Particles) Clear() {
	p.Items = p.Items[:0]
}
