package components

import (
	"nusantara/internal/engine"
	"nusantara/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// WorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) WorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := sc.X
	if sc.Y > m {
		m = sc.Y
	}
	if sc.Z > m {
		m = sc.Z
	}
	return s.Radius * m
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.RaycastHit, bool) {
	return physics.RaycastSphere(origin, direction, s.GetCenter(), s.WorldRadius(), maxDistance)
}

// Collider is implemented by every pick volume.
type Collider interface {
	engine.Component
	Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.RaycastHit, bool)
}
