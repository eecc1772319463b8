package components

import (
	"math"

	"nusantara/internal/engine"
)

// Floater bobs its object around a base height and optionally spins it.
// Artifacts float slowly; collectibles bob faster and spin.
type Floater struct {
	engine.BaseComponent
	BaseY     float32
	Amplitude float32
	Frequency float32 // radians per second
	SpinStep  float32 // radians per update

	time float32
}

func NewArtifactFloater(baseY float32) *Floater {
	return &Floater{BaseY: baseY, Amplitude: 0.3, Frequency: 1}
}

func NewCollectibleFloater(baseY float32) *Floater {
	return &Floater{BaseY: baseY, Amplitude: 0.2, Frequency: 3, SpinStep: 0.02}
}

func (f *Floater) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	f.time += deltaTime
	g.Transform.Position.Y = f.BaseY + float32(math.Sin(float64(f.time*f.Frequency)))*f.Amplitude

	if f.SpinStep != 0 {
		g.Transform.Rotation.Y += f.SpinStep * 180 / math.Pi
		if g.Transform.Rotation.Y > 360 {
			g.Transform.Rotation.Y -= 360
		}
	}
}
