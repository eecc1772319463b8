// Package player moves the avatar relative to the camera and drives its
// procedural walk animation.
package player

import (
	"math"

	"nusantara/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultSpeed    = 0.05 // units per frame
	DefaultBoundary = 20
	CollisionRadius = 1.2
	walkCycleStep   = 0.15
	armSwing        = 0.5
	legSwing        = 0.6
	bobHeight       = 0.05
	idleDecay       = 0.9
)

var up = rl.Vector3{X: 0, Y: 1, Z: 0}

// Input is the movement intent for one frame.
type Input struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

func (in Input) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// Pose holds limb rotations in radians about X and the body bob height.
type Pose struct {
	LeftArm  float32
	RightArm float32
	LeftLeg  float32
	RightLeg float32
	Bob      float32
}

type State struct {
	Position  rl.Vector3
	Facing    float32 // radians about Y, 0 faces +Z
	Velocity  rl.Vector3
	Walking   bool
	WalkCycle float32
	Pose      Pose
}

// Controller owns the player state. It is advanced once per frame.
type Controller struct {
	State
	Speed      float32
	Boundary   float32
	LockFacing bool
}

func NewController(spawn rl.Vector3) *Controller {
	c := &Controller{Speed: DefaultSpeed, Boundary: DefaultBoundary}
	c.Teleport(spawn)
	return c
}

// Teleport places the player on the ground at pos and stops it.
func (c *Controller) Teleport(pos rl.Vector3) {
	c.Position = rl.Vector3{X: pos.X, Y: 0, Z: pos.Z}
	c.Velocity = rl.Vector3{}
	c.Walking = false
}

// ToggleLock switches between facing the camera and facing the direction
// of travel.
func (c *Controller) ToggleLock() bool {
	c.LockFacing = !c.LockFacing
	return c.LockFacing
}

// GroundBasis returns the camera forward flattened onto the ground and the
// matching right vector.
func GroundBasis(camForward rl.Vector3) (forward, right rl.Vector3) {
	forward = rl.Vector3Normalize(rl.Vector3{X: camForward.X, Z: camForward.Z})
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, up))
	return forward, right
}

// Update advances one frame. obstacles are the positions of entities that
// block movement; a move that would end inside one without leaving it is
// discarded entirely.
func (c *Controller) Update(in Input, camForward rl.Vector3, obstacles []rl.Vector3) {
	forward, right := GroundBasis(camForward)

	var move rl.Vector3
	if in.Forward {
		move = rl.Vector3Add(move, forward)
	}
	if in.Backward {
		move = rl.Vector3Subtract(move, forward)
	}
	if in.Left {
		move = rl.Vector3Subtract(move, right)
	}
	if in.Right {
		move = rl.Vector3Add(move, right)
	}

	c.Velocity = rl.Vector3{}
	moving := rl.Vector3Length(move) > 0
	if moving {
		move = rl.Vector3Scale(rl.Vector3Normalize(move), c.Speed)
		candidate := rl.Vector3Add(c.Position, move)
		if !physics.BlocksMove(c.Position, candidate, obstacles, CollisionRadius) {
			c.Position = candidate
			c.Velocity = move
		}
	}

	switch {
	case c.LockFacing:
		c.Facing = yaw(forward)
	case moving:
		c.Facing = yaw(move)
	}
	c.Walking = moving

	c.WalkCycle, c.Pose = Animate(c.Pose, c.WalkCycle, c.Walking)

	c.Position.Y = 0
	c.Position.X = clamp(c.Position.X, -c.Boundary, c.Boundary)
	c.Position.Z = clamp(c.Position.Z, -c.Boundary, c.Boundary)
}

// Animate returns the next walk cycle phase and pose. Walking advances the
// cycle and derives the pose from it; idling decays every limb toward rest.
func Animate(p Pose, cycle float32, walking bool) (float32, Pose) {
	if !walking {
		return cycle, Pose{
			LeftArm:  p.LeftArm * idleDecay,
			RightArm: p.RightArm * idleDecay,
			LeftLeg:  p.LeftLeg * idleDecay,
			RightLeg: p.RightLeg * idleDecay,
		}
	}
	cycle += walkCycleStep
	s := float32(math.Sin(float64(cycle)))
	return cycle, Pose{
		LeftArm:  s * armSwing,
		RightArm: -s * armSwing,
		LeftLeg:  -s * legSwing,
		RightLeg: s * legSwing,
		Bob:      float32(math.Abs(math.Sin(float64(cycle*2)))) * bobHeight,
	}
}

func yaw(dir rl.Vector3) float32 {
	return float32(math.Atan2(float64(dir.X), float64(dir.Z)))
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
