package world

import (
	"nusantara/internal/collectibles"
	"nusantara/internal/components"
	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ambient describes the look of a zone.
type Ambient struct {
	Sky       rl.Color
	Floor     rl.Color
	FloorSize float32
	FogNear   float32
	FogFar    float32
	Dust      int
	DustColor rl.Color
}

// Label is floating text anchored in the world, such as a door sign.
type Label struct {
	Text     string
	Subtext  string
	Position rl.Vector3
}

// Zone is one loaded diorama. Entities are interactive roots; Scenery is
// decoration that still occludes picking.
type Zone struct {
	ID       string
	Spawn    rl.Vector3
	Ambient  Ambient
	Entities []*engine.GameObject
	Scenery  []*engine.GameObject
	Labels   []Label
}

// Roots returns every root object of the zone.
func (z *Zone) Roots() []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(z.Entities)+len(z.Scenery))
	out = append(out, z.Entities...)
	return append(out, z.Scenery...)
}

// Remove drops an entity from the zone. It does not release it.
func (z *Zone) Remove(g *engine.GameObject) bool {
	for i, e := range z.Entities {
		if e == g {
			z.Entities = append(z.Entities[:i], z.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// Obstacles returns the positions of entities that block the player.
func (z *Zone) Obstacles() []rl.Vector3 {
	var out []rl.Vector3
	for _, e := range z.Entities {
		if in := engine.GetComponent[*components.Interactable](e); in != nil && !in.Passable() {
			out = append(out, e.Transform.Position)
		}
	}
	return out
}

// Collectibles returns the collectible entities still in the zone.
func (z *Zone) Collectibles() []*engine.GameObject {
	var out []*engine.GameObject
	for _, e := range z.Entities {
		if in := engine.GetComponent[*components.Interactable](e); in != nil && in.Role == components.RoleCollectible {
			out = append(out, e)
		}
	}
	return out
}

// DropFound removes and releases collectibles the store already has as
// found. It returns how many were dropped.
func (z *Zone) DropFound(store *collectibles.Store) int {
	dropped := 0
	for _, e := range z.Collectibles() {
		in := engine.GetComponent[*components.Interactable](e)
		if store.IsFound(in.CollectibleID) {
			z.Remove(e)
			if e.Scene != nil {
				e.Scene.RemoveGameObject(e)
			}
			e.Release()
			dropped++
		}
	}
	return dropped
}
