package components

import (
	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeCylinder
	ShapeCone
	ShapePlane
)

// HighlightEmissive is added to the base color while an entity is hovered.
var HighlightEmissive = rl.NewColor(0x44, 0x44, 0x44, 0)

// MeshRenderer draws a generated primitive. The GPU model is built on first
// draw so objects can be created and torn down without a graphics context.
type MeshRenderer struct {
	engine.BaseComponent
	Shape    Shape
	Size     rl.Vector3 // cube: extents; sphere: X radius; cylinder/cone: X radius, Y height; plane: X/Z
	Color    rl.Color
	Emissive rl.Color
	Offset   rl.Vector3 // draw-only displacement, not part of the transform

	highlighted bool
	model       rl.Model
	uploaded    bool
	released    bool
}

func NewMeshRenderer(shape Shape, size rl.Vector3, color rl.Color) *MeshRenderer {
	return &MeshRenderer{Shape: shape, Size: size, Color: color}
}

func (m *MeshRenderer) SetHighlighted(on bool) {
	m.highlighted = on
}

func (m *MeshRenderer) Highlighted() bool {
	return m.highlighted
}

// DrawColor is the base color with emissive and hover highlight added.
func (m *MeshRenderer) DrawColor() rl.Color {
	c := addColor(m.Color, m.Emissive)
	if m.highlighted {
		c = addColor(c, HighlightEmissive)
	}
	return c
}

func addColor(a, b rl.Color) rl.Color {
	sat := func(x, y uint8) uint8 {
		s := int(x) + int(y)
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return rl.NewColor(sat(a.R, b.R), sat(a.G, b.G), sat(a.B, b.B), a.A)
}

func (m *MeshRenderer) Draw() {
	m.DrawWith(m.DrawColor())
}

// DrawWith draws using tint in place of the computed color, e.g. after fog
// has been applied.
func (m *MeshRenderer) DrawWith(tint rl.Color) {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.released {
		return
	}
	if !m.uploaded {
		m.model = rl.LoadModelFromMesh(m.genMesh())
		m.uploaded = true
	}

	scale := g.WorldScale()
	rot := g.WorldRotation()
	pos := rl.Vector3Add(g.WorldPosition(), m.Offset)

	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	m.model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, tint)
}

func (m *MeshRenderer) genMesh() rl.Mesh {
	switch m.Shape {
	case ShapeSphere:
		return rl.GenMeshSphere(m.Size.X, 16, 16)
	case ShapeCylinder:
		return rl.GenMeshCylinder(m.Size.X, m.Size.Y, 16)
	case ShapeCone:
		return rl.GenMeshCone(m.Size.X, m.Size.Y, 16)
	case ShapePlane:
		return rl.GenMeshPlane(m.Size.X, m.Size.Z, 1, 1)
	default:
		return rl.GenMeshCube(m.Size.X, m.Size.Y, m.Size.Z)
	}
}

// Release unloads the GPU model if one was created. It is always safe to
// call and the renderer never draws again afterwards.
func (m *MeshRenderer) Release() {
	if m.uploaded {
		rl.UnloadModel(m.model)
		m.uploaded = false
	}
	m.released = true
}

func (m *MeshRenderer) Released() bool {
	return m.released
}
