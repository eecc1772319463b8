package components

import (
	"math"

	"github.com/gen2brain/raylib-go/easings"

	"nusantara/internal/engine"
)

const (
	collectDuration  = 1.0 / 3.0
	collectRise      = 2.0
	collectSpinSpeed = 12.0 // radians per second
)

// Collector plays the pickup animation of a collectible and then asks the
// world to destroy the object. It replaces the idle Floater.
type Collector struct {
	engine.BaseComponent
	startY     float32
	startScale float32
	elapsed    float32
	done       bool
}

// Collect starts the pickup animation on g. Calling it again on an object
// that is already being collected has no effect.
func Collect(g *engine.GameObject) *Collector {
	if c := engine.GetComponent[*Collector](g); c != nil {
		return c
	}
	if f := engine.GetComponent[*Floater](g); f != nil {
		f.Amplitude = 0
		f.SpinStep = 0
	}
	c := &Collector{
		startY:     g.Transform.Position.Y,
		startScale: g.Transform.Scale.X,
	}
	g.AddComponent(c)
	return c
}

func (c *Collector) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || c.done {
		return
	}

	c.elapsed += deltaTime
	t := c.elapsed
	if t > collectDuration {
		t = collectDuration
	}

	s := easings.CubicIn(t, c.startScale, -c.startScale, collectDuration)
	g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z = s, s, s
	g.Transform.Position.Y = easings.QuadOut(t, c.startY, collectRise, collectDuration)
	g.Transform.Rotation.Y += collectSpinSpeed * deltaTime * 180 / math.Pi

	if c.elapsed >= collectDuration {
		c.done = true
		if g.Scene != nil && g.Scene.World != nil {
			g.Scene.World.Destroy(g)
		}
	}
}

// Done reports whether the animation has finished.
func (c *Collector) Done() bool {
	return c.done
}
