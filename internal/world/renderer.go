package world

import (
	"nusantara/internal/components"
	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	labelFontSize    = 20
	subLabelFontSize = 14
)

// Renderer draws the active zone with linear distance fog.
type Renderer struct {
	DrawLabels bool
}

func NewRenderer() *Renderer {
	return &Renderer{DrawLabels: true}
}

// FogFactor returns how much of the sky color replaces an object color at
// distance dist: 0 before near, 1 past far.
func FogFactor(dist, near, far float32) float32 {
	if far <= near {
		return 0
	}
	f := (dist - near) / (far - near)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Fog blends c toward sky by FogFactor. Alpha is preserved.
func Fog(c, sky rl.Color, dist, near, far float32) rl.Color {
	f := FogFactor(dist, near, far)
	if f == 0 {
		return c
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*f)
	}
	return rl.Color{R: mix(c.R, sky.R), G: mix(c.G, sky.G), B: mix(c.B, sky.B), A: c.A}
}

// Draw renders the world from cam. It must be called between BeginDrawing
// and EndDrawing.
func (r *Renderer) Draw(w *World, cam rl.Camera3D) {
	amb := defaultAmbient()
	if w.Zone != nil {
		amb = w.Zone.Ambient
	}
	rl.ClearBackground(amb.Sky)

	rl.BeginMode3D(cam)
	rl.DrawPlane(rl.Vector3Zero(), rl.Vector2{X: amb.FloorSize, Y: amb.FloorSize}, amb.Floor)

	for _, root := range w.Scene.GameObjects {
		root.Traverse(func(g *engine.GameObject) {
			if !g.Active {
				return
			}
			for _, c := range g.Components() {
				switch c := c.(type) {
				case *components.MeshRenderer:
					dist := rl.Vector3Distance(cam.Position, g.WorldPosition())
					c.DrawWith(Fog(c.DrawColor(), amb.Sky, dist, amb.FogNear, amb.FogFar))
				case *components.Dust:
					c.Draw()
				}
			}
		})
	}
	rl.EndMode3D()

	if r.DrawLabels && w.Zone != nil {
		r.drawLabels(w.Zone.Labels, cam)
	}
}

func (r *Renderer) drawLabels(labels []Label, cam rl.Camera3D) {
	for _, l := range labels {
		// Skip labels behind the camera.
		toLabel := rl.Vector3Subtract(l.Position, cam.Position)
		forward := rl.Vector3Subtract(cam.Target, cam.Position)
		if rl.Vector3DotProduct(toLabel, forward) <= 0 {
			continue
		}
		p := rl.GetWorldToScreen(l.Position, cam)
		w := rl.MeasureText(l.Text, labelFontSize)
		rl.DrawText(l.Text, int32(p.X)-w/2, int32(p.Y), labelFontSize, rl.RayWhite)
		if l.Subtext != "" {
			sw := rl.MeasureText(l.Subtext, subLabelFontSize)
			rl.DrawText(l.Subtext, int32(p.X)-sw/2, int32(p.Y)+labelFontSize+2, subLabelFontSize, rl.LightGray)
		}
	}
}

func defaultAmbient() Ambient {
	return Ambient{
		Sky:       rl.Color{R: 26, G: 26, B: 46, A: 255},
		Floor:     rl.Color{R: 42, G: 42, B: 62, A: 255},
		FloorSize: 50,
		FogNear:   10,
		FogFar:    50,
	}
}

// Release frees GPU resources held by every renderer in the scene.
func (r *Renderer) Release(w *World) {
	for _, g := range w.Scene.GameObjects {
		g.Release()
	}
}
