package components

import (
	"github.com/aquilax/go-perlin"

	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	dustHalfExtent = 20
	dustCeiling    = 10
	dustDrift      = 0.02
	dustRise       = 0.01
)

// Dust is a field of drifting motes. Drift comes from Perlin noise so the
// field is deterministic for a given seed.
type Dust struct {
	engine.BaseComponent
	Color     rl.Color
	Particles []rl.Vector3

	noise *perlin.Perlin
	time  float64
}

func NewDust(count int, seed int64, color rl.Color) *Dust {
	d := &Dust{
		Color:     color,
		Particles: make([]rl.Vector3, count),
		noise:     perlin.NewPerlin(2, 2, 3, seed),
	}
	for i := range d.Particles {
		d.Particles[i] = rl.Vector3{
			X: d.scatter(float64(i), 0.5),
			Y: (d.unit(float64(i), 7.5) + 1) / 2 * dustCeiling,
			Z: d.scatter(float64(i), 13.5),
		}
	}
	return d
}

// unit samples noise in roughly [-1, 1].
func (d *Dust) unit(x, y float64) float32 {
	v := d.noise.Noise2D(x*0.37, y) * 2
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return float32(v)
}

func (d *Dust) scatter(x, y float64) float32 {
	return d.unit(x, y+d.time) * dustHalfExtent
}

func (d *Dust) Update(deltaTime float32) {
	d.time += float64(deltaTime)
	for i := range d.Particles {
		p := &d.Particles[i]
		fi := float64(i)
		p.X += d.unit(fi, d.time) * dustDrift
		p.Y += dustRise*0.5 + (d.unit(fi, d.time+50)+1)*dustRise*0.5
		p.Z += d.unit(fi, d.time+100) * dustDrift

		if p.Y > dustCeiling {
			p.Y = 0
		}
		if p.X > dustHalfExtent || p.X < -dustHalfExtent {
			p.X = d.scatter(fi, 200)
		}
		if p.Z > dustHalfExtent || p.Z < -dustHalfExtent {
			p.Z = d.scatter(fi, 300)
		}
	}
}

func (d *Dust) Draw() {
	for _, p := range d.Particles {
		rl.DrawCubeV(p, rl.Vector3{X: 0.06, Y: 0.06, Z: 0.06}, d.Color)
	}
}
