package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOffsetIsBehindAndAbove(t *testing.T) {
	c := New(rl.Vector3{})

	assert.InDelta(t, 0, c.Offset().X, 1e-5)
	assert.InDelta(t, 3, c.Offset().Y, 1e-5)
	assert.InDelta(t, 6, c.Offset().Z, 1e-5)
	assert.Equal(t, rl.Vector3{Y: 1}, c.Target)
}

func TestOrbitDeadZone(t *testing.T) {
	c := New(rl.Vector3{})

	c.Orbit(0.1, -0.05)
	assert.Zero(t, c.Horizontal)
	assert.Zero(t, c.Vertical)

	c.Orbit(10, 0)
	assert.InDelta(t, -0.03, c.Horizontal, 1e-6)
}

func TestOrbitVerticalClamp(t *testing.T) {
	c := New(rl.Vector3{})

	c.Orbit(0, -10000)
	assert.InDelta(t, math.Pi/3, c.Vertical, 1e-6)

	c.Orbit(0, 100000)
	assert.InDelta(t, -math.Pi/6, c.Vertical, 1e-6)
}

func TestUpdateSmoothsTowardPlayer(t *testing.T) {
	c := New(rl.Vector3{})
	player := rl.Vector3{X: 10}

	c.Update(player)

	// 10% of the 10 unit gap is closed in one step.
	assert.InDelta(t, 1, c.Position.X, 1e-5)
	assert.Equal(t, rl.Vector3{X: 10, Y: 1}, c.Target)

	for i := 0; i < 200; i++ {
		c.Update(player)
	}
	assert.InDelta(t, 10, c.Position.X, 1e-3)
}

func TestForwardPointsAtTarget(t *testing.T) {
	c := New(rl.Vector3{})
	f := c.Forward()

	assert.InDelta(t, 1, rl.Vector3Length(f), 1e-5)
	assert.Less(t, f.Z, float32(0))
	assert.Less(t, f.Y, float32(0))
}
