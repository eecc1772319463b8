package player

import (
	"math"

	"nusantara/internal/components"
	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const limbLength = 0.6

var (
	skinColor  = rl.NewColor(0xFF, 0xDB, 0xAC, 255)
	shirtColor = rl.NewColor(0x41, 0x69, 0xE1, 255)
	pantsColor = rl.NewColor(0x2C, 0x3E, 0x50, 255)
)

// Rig copies the controller state onto the avatar's transforms every frame.
type Rig struct {
	engine.BaseComponent
	Controller *Controller

	leftArm, rightArm, leftLeg, rightLeg limb
	renderers                            []*components.MeshRenderer
}

type limb struct {
	obj   *engine.GameObject
	pivot rl.Vector3
}

// NewAvatar builds the player object driven by c.
func NewAvatar(c *Controller) *engine.GameObject {
	root := engine.NewGameObject("Player")
	root.Tags = []string{"player"}

	part := func(name string, shape components.Shape, size, pos rl.Vector3, color rl.Color) *engine.GameObject {
		g := engine.NewGameObject(name)
		g.Transform.Position = pos
		g.AddComponent(components.NewMeshRenderer(shape, size, color))
		root.AddChild(g)
		return g
	}

	part("Head", components.ShapeSphere, rl.Vector3{X: 0.25}, rl.Vector3{Y: 1.5}, skinColor)
	part("Torso", components.ShapeCube, rl.Vector3{X: 0.5, Y: 0.7, Z: 0.3}, rl.Vector3{Y: 0.85}, shirtColor)

	armSize := rl.Vector3{X: 0.15, Y: limbLength, Z: 0.15}
	legSize := rl.Vector3{X: 0.2, Y: limbLength, Z: 0.2}
	rig := &Rig{Controller: c}
	rig.leftArm = limb{pivot: rl.Vector3{X: -0.325, Y: 1.05}}
	rig.rightArm = limb{pivot: rl.Vector3{X: 0.325, Y: 1.05}}
	rig.leftLeg = limb{pivot: rl.Vector3{X: -0.12, Y: 0.5}}
	rig.rightLeg = limb{pivot: rl.Vector3{X: 0.12, Y: 0.5}}
	rig.leftArm.obj = part("LeftArm", components.ShapeCube, armSize, rig.leftArm.pivot, shirtColor)
	rig.rightArm.obj = part("RightArm", components.ShapeCube, armSize, rig.rightArm.pivot, shirtColor)
	rig.leftLeg.obj = part("LeftLeg", components.ShapeCube, legSize, rig.leftLeg.pivot, pantsColor)
	rig.rightLeg.obj = part("RightLeg", components.ShapeCube, legSize, rig.rightLeg.pivot, pantsColor)

	root.AddComponent(rig)
	rig.renderers = engine.GetComponentsInChildren[*components.MeshRenderer](root)
	rig.sync()
	return root
}

func (r *Rig) Update(deltaTime float32) {
	r.sync()
}

func (r *Rig) sync() {
	g := r.GetGameObject()
	if g == nil || r.Controller == nil {
		return
	}
	s := r.Controller.State
	g.Transform.Position = s.Position
	g.Transform.Rotation.Y = s.Facing * rl.Rad2deg

	r.leftArm.swing(s.Pose.LeftArm)
	r.rightArm.swing(s.Pose.RightArm)
	r.leftLeg.swing(s.Pose.LeftLeg)
	r.rightLeg.swing(s.Pose.RightLeg)

	for _, m := range r.renderers {
		m.Offset.Y = s.Pose.Bob
	}
}

// swing rotates the limb about its pivot; the mesh hangs below the pivot.
func (l limb) swing(angle float32) {
	if l.obj == nil {
		return
	}
	sin, cos := math.Sincos(float64(angle))
	half := float32(limbLength / 2)
	l.obj.Transform.Position = rl.Vector3{
		X: l.pivot.X,
		Y: l.pivot.Y - half*float32(cos),
		Z: l.pivot.Z - half*float32(sin),
	}
	l.obj.Transform.Rotation.X = angle * rl.Rad2deg
}
