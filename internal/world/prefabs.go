package world

import (
	"math"

	"nusantara/internal/components"
	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	stoneColor  = rl.NewColor(0x8B, 0x73, 0x55, 255)
	slateColor  = rl.NewColor(0x69, 0x69, 0x69, 255)
	chestColor  = rl.NewColor(0x8B, 0x45, 0x13, 255)
	lidColor    = rl.NewColor(0x65, 0x43, 0x21, 255)
	frameColor  = rl.NewColor(0x2C, 0x2C, 0x2C, 255)
	portalColor = rl.NewColor(0x41, 0x69, 0xE1, 255)
	portalGlow  = rl.NewColor(0x1E, 0x3A, 0x8A, 0)
	portalPane  = rl.NewColor(0x64, 0x95, 0xED, 128)
	coinGold    = rl.NewColor(0xFF, 0xD7, 0x00, 255)
)

func addPart(root *engine.GameObject, name string, shape components.Shape, size, pos rl.Vector3, color rl.Color) *components.MeshRenderer {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	m := components.NewMeshRenderer(shape, size, color)
	g.AddComponent(m)
	root.AddChild(g)
	return m
}

func addCollider(root *engine.GameObject, size, center rl.Vector3) {
	g := engine.NewGameObject("Pick")
	g.Transform.Position = center
	g.AddComponent(components.NewBoxCollider(size))
	root.AddChild(g)
}

// ArtifactKind selects the artifact model.
type ArtifactKind string

const (
	KindStatue      ArtifactKind = "statue"
	KindInscription ArtifactKind = "inscription"
	KindTreasure    ArtifactKind = "treasure"
	KindPillar      ArtifactKind = "pillar"
)

// NewArtifact builds a floating artifact entity.
func NewArtifact(kind ArtifactKind, color rl.Color, title, description, image string, pos rl.Vector3) *engine.GameObject {
	root := engine.NewGameObject(title)
	root.Tags = []string{"artifact"}
	root.Transform.Position = pos
	root.AddComponent(components.NewArtifact(title, description, image))
	root.AddComponent(components.NewArtifactFloater(pos.Y))

	switch kind {
	case KindInscription:
		addPart(root, "Slab", components.ShapeCube, rl.Vector3{X: 1.2, Y: 1.8, Z: 0.3}, rl.Vector3{Y: 0.9}, slateColor)
		addPart(root, "Border", components.ShapeCube, rl.Vector3{X: 1.3, Y: 1.9, Z: 0.25}, rl.Vector3{Y: 0.9, Z: -0.02}, color)
		for i := 0; i < 5; i++ {
			addPart(root, "Line", components.ShapeCube, rl.Vector3{X: 0.8, Y: 0.05, Z: 0.05},
				rl.Vector3{Y: 0.3 + float32(i)*0.25, Z: 0.16}, coinGold)
		}
		addCollider(root, rl.Vector3{X: 1.3, Y: 1.9, Z: 0.4}, rl.Vector3{Y: 0.9})
	case KindTreasure:
		addPart(root, "Chest", components.ShapeCube, rl.Vector3{X: 0.8, Y: 0.6, Z: 0.6}, rl.Vector3{Y: 0.3}, chestColor)
		addPart(root, "Lid", components.ShapeCube, rl.Vector3{X: 0.85, Y: 0.2, Z: 0.65}, rl.Vector3{Y: 0.7}, lidColor)
		gem := addPart(root, "Gem", components.ShapeSphere, rl.Vector3{X: 0.3}, rl.Vector3{Y: 0.5}, color)
		gem.Emissive = rl.NewColor(color.R/4, color.G/4, color.B/4, 0)
		addCollider(root, rl.Vector3{X: 0.9, Y: 0.9, Z: 0.7}, rl.Vector3{Y: 0.45})
	case KindPillar:
		addPart(root, "Column", components.ShapeCylinder, rl.Vector3{X: 0.35, Y: 2.5}, rl.Vector3{}, stoneColor)
		top := addPart(root, "Crown", components.ShapeSphere, rl.Vector3{X: 0.4}, rl.Vector3{Y: 2.7}, color)
		top.Emissive = rl.NewColor(color.R/4, color.G/4, color.B/4, 0)
		addCollider(root, rl.Vector3{X: 0.8, Y: 3.1, Z: 0.8}, rl.Vector3{Y: 1.55})
	default:
		addPart(root, "Pedestal", components.ShapeCylinder, rl.Vector3{X: 0.6, Y: 0.3}, rl.Vector3{}, stoneColor)
		addPart(root, "Body", components.ShapeCylinder, rl.Vector3{X: 0.35, Y: 1.2}, rl.Vector3{Y: 0.3}, color)
		addPart(root, "Head", components.ShapeSphere, rl.Vector3{X: 0.25}, rl.Vector3{Y: 1.7}, color)
		addCollider(root, rl.Vector3{X: 1.2, Y: 2, Z: 1.2}, rl.Vector3{Y: 1})
	}

	glow := engine.NewGameObject("Glow")
	glow.Transform.Position = rl.Vector3{Y: 1}
	glow.Transform.Scale = rl.Vector3{X: 1, Y: 1.5, Z: 1}
	glow.AddComponent(components.NewMeshRenderer(components.ShapeSphere, rl.Vector3{X: 1.2}, rl.NewColor(color.R, color.G, color.B, 50)))
	root.AddChild(glow)

	return root
}

// NewCoin builds a collectible entity bound to a store id.
func NewCoin(id, prompt string, color rl.Color, pos rl.Vector3) *engine.GameObject {
	root := engine.NewGameObject(id)
	root.Tags = []string{"collectible"}
	root.Transform.Position = pos
	root.AddComponent(components.NewCollectible(id, prompt))
	root.AddComponent(components.NewCollectibleFloater(pos.Y))

	coin := engine.NewGameObject("Coin")
	coin.Transform.Position = rl.Vector3{Y: -0.05}
	coin.Transform.Rotation.X = 90
	m := components.NewMeshRenderer(components.ShapeCylinder, rl.Vector3{X: 0.3, Y: 0.1}, color)
	m.Emissive = rl.NewColor(color.R/3, color.G/3, color.B/3, 0)
	coin.AddComponent(m)
	root.AddChild(coin)

	addPart(root, "Glow", components.ShapeSphere, rl.Vector3{X: 0.5}, rl.Vector3{}, rl.NewColor(color.R, color.G, color.B, 76))
	addCollider(root, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{})
	return root
}

// NewDoor builds a kingdom door. The door front faces local +Z.
func NewDoor(destination, prompt string, color rl.Color, pos rl.Vector3, yawDeg float32) *engine.GameObject {
	root := engine.NewGameObject("Door_" + destination)
	root.Tags = []string{"door"}
	root.Transform.Position = pos
	root.Transform.Rotation.Y = yawDeg
	root.AddComponent(components.NewDoor(destination, prompt))

	addPart(root, "FrameLeft", components.ShapeCube, rl.Vector3{X: 0.2, Y: 3.5, Z: 0.5}, rl.Vector3{X: -1.1}, frameColor)
	addPart(root, "FrameRight", components.ShapeCube, rl.Vector3{X: 0.2, Y: 3.5, Z: 0.5}, rl.Vector3{X: 1.1}, frameColor)
	addPart(root, "FrameTop", components.ShapeCube, rl.Vector3{X: 2.4, Y: 0.2, Z: 0.5}, rl.Vector3{Y: 1.65}, frameColor)
	addPart(root, "Panel", components.ShapeCube, rl.Vector3{X: 2, Y: 3, Z: 0.3}, rl.Vector3{}, color)
	for i := 0; i < 3; i++ {
		d := addPart(root, "Ornament", components.ShapeCube, rl.Vector3{X: 0.15, Y: 0.8, Z: 0.05},
			rl.Vector3{X: -0.6 + float32(i)*0.6, Z: 0.2}, coinGold)
		d.Emissive = rl.NewColor(0x40, 0x36, 0, 0)
	}
	addCollider(root, rl.Vector3{X: 2.4, Y: 3.5, Z: 0.5}, rl.Vector3{})
	return root
}

// NewPortal builds the glowing exit portal used inside kingdoms.
func NewPortal(destination, prompt string, pos rl.Vector3) *engine.GameObject {
	root := engine.NewGameObject("Portal_" + destination)
	root.Tags = []string{"door"}
	root.Transform.Position = pos
	root.AddComponent(components.NewDoor(destination, prompt))

	for _, p := range []struct {
		name      string
		size, pos rl.Vector3
	}{
		{"FrameLeft", rl.Vector3{X: 0.3, Y: 3, Z: 0.3}, rl.Vector3{X: -1.2}},
		{"FrameRight", rl.Vector3{X: 0.3, Y: 3, Z: 0.3}, rl.Vector3{X: 1.2}},
		{"FrameTop", rl.Vector3{X: 2.7, Y: 0.3, Z: 0.3}, rl.Vector3{Y: 1.35}},
	} {
		m := addPart(root, p.name, components.ShapeCube, p.size, p.pos, portalColor)
		m.Emissive = portalGlow
	}
	addPart(root, "Pane", components.ShapeCube, rl.Vector3{X: 2.4, Y: 2.7, Z: 0.02}, rl.Vector3{}, portalPane)
	addCollider(root, rl.Vector3{X: 2.7, Y: 3, Z: 0.3}, rl.Vector3{})
	return root
}

// FacingCenter returns the yaw in degrees that turns local +Z toward the
// origin from pos.
func FacingCenter(pos rl.Vector3) float32 {
	return float32(math.Atan2(float64(-pos.X), float64(-pos.Z))) * rl.Rad2deg
}
