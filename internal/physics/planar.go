package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlanarDistance is the distance between a and b ignoring height.
func PlanarDistance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

// BlocksMove reports whether stepping from to to is stopped by an obstacle.
// A step is stopped only when it ends inside the threshold without gaining
// distance from that obstacle, so a player already inside can walk out.
func BlocksMove(from, to rl.Vector3, obstacles []rl.Vector3, threshold float32) bool {
	for _, o := range obstacles {
		d := PlanarDistance(to, o)
		if d < threshold && d <= PlanarDistance(from, o) {
			return true
		}
	}
	return false
}
