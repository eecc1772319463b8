package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minVertical = -math.Pi / 6
	maxVertical = math.Pi / 3
	// Pointer jitter below this magnitude on both axes is ignored.
	deadZone = 0.1
)

// OrbitCamera follows the player from a spherical offset and eases toward
// it every frame.
type OrbitCamera struct {
	Position   rl.Vector3
	Target     rl.Vector3
	Horizontal float32 // radians around Y
	Vertical   float32 // radians above the horizon
	Distance   float32
	Height     float32
	Smoothing  float32 // fraction of the remaining gap closed per update
	LookSpeed  float32 // radians per pointer unit
	Fovy       float32
}

func New(player rl.Vector3) *OrbitCamera {
	c := &OrbitCamera{
		Distance:  6,
		Height:    3,
		Smoothing: 0.1,
		LookSpeed: 0.003,
		Fovy:      75,
	}
	c.Snap(player)
	return c
}

// Orbit applies a pointer delta.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	if abs(dx) <= deadZone && abs(dy) <= deadZone {
		return
	}
	c.Horizontal -= dx * c.LookSpeed
	c.Vertical -= dy * c.LookSpeed
	c.Vertical = clamp(c.Vertical, minVertical, maxVertical)
}

// Offset is the camera position relative to the player before smoothing.
func (c *OrbitCamera) Offset() rl.Vector3 {
	h := float64(c.Horizontal)
	v := float64(c.Vertical)
	d := float64(c.Distance)
	return rl.Vector3{
		X: float32(d * math.Sin(h) * math.Cos(v)),
		Y: float32(d*math.Sin(v)) + c.Height,
		Z: float32(d * math.Cos(h) * math.Cos(v)),
	}
}

// Update moves the camera a step toward its desired position behind the
// player and re-aims it.
func (c *OrbitCamera) Update(player rl.Vector3) {
	desired := rl.Vector3Add(player, c.Offset())
	c.Position = rl.Vector3Lerp(c.Position, desired, c.Smoothing)
	c.Target = rl.Vector3Add(player, rl.Vector3{Y: 1})
}

// Snap places the camera at its desired position without smoothing.
func (c *OrbitCamera) Snap(player rl.Vector3) {
	c.Position = rl.Vector3Add(player, c.Offset())
	c.Target = rl.Vector3Add(player, rl.Vector3{Y: 1})
}

// Forward is the normalized view direction.
func (c *OrbitCamera) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
