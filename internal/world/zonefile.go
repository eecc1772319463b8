package world

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/pixil98/go-errors"

	"nusantara/internal/assets"
	"nusantara/internal/components"
	"nusantara/internal/engine"
	"nusantara/internal/kingdoms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type ZoneFile struct {
	ID           string           `json:"id"`
	Spawn        [3]float32       `json:"spawn"`
	Ambient      ambientDef       `json:"ambient"`
	LobbyDoors   *lobbyDoorsDef   `json:"lobbyDoors,omitempty"`
	Doors        []doorDef        `json:"doors,omitempty"`
	Artifacts    []artifactDef    `json:"artifacts,omitempty"`
	Collectibles []collectibleDef `json:"collectibles,omitempty"`
	Objects      []ObjectDef      `json:"objects,omitempty"`
}

type ambientDef struct {
	Sky       string     `json:"sky"`
	Floor     string     `json:"floor"`
	FloorSize float32    `json:"floorSize"`
	Fog       [2]float32 `json:"fog"`
	Dust      int        `json:"dust,omitempty"`
	DustColor string     `json:"dustColor,omitempty"`
}

// lobbyDoorsDef places one door per kingdom on a ring around the origin.
type lobbyDoorsDef struct {
	Radius float32 `json:"radius"`
	Height float32 `json:"height"`
}

type doorDef struct {
	Destination string     `json:"destination"`
	Prompt      string     `json:"prompt"`
	Position    [3]float32 `json:"position"`
	Rotation    float32    `json:"rotation,omitempty"`
	Style       string     `json:"style,omitempty"` // "door" or "portal"
	Color       string     `json:"color,omitempty"`
}

type artifactDef struct {
	Kind        string     `json:"kind"`
	Color       string     `json:"color"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	Position    [3]float32 `json:"position"`
}

type collectibleDef struct {
	ID       string     `json:"id"`
	Prompt   string     `json:"prompt,omitempty"`
	Color    string     `json:"color,omitempty"`
	Position [3]float32 `json:"position"`
}

// ObjectDef is a piece of scenery. At instantiates the object once per
// listed position instead of at Position.
type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	At         [][3]float32      `json:"at,omitempty"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh"`
	MeshSize []float32 `json:"meshSize"`
	Color    string    `json:"color"`
	Emissive string    `json:"emissive,omitempty"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string  `json:"type"`
	Radius float32 `json:"radius"`
}

var shapeByName = map[string]components.Shape{
	"cube":     components.ShapeCube,
	"sphere":   components.ShapeSphere,
	"cylinder": components.ShapeCylinder,
	"cone":     components.ShapeCone,
	"plane":    components.ShapePlane,
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Parsing ---

// ParseZoneFile decodes a zone layout.
func ParseZoneFile(data []byte) (*ZoneFile, error) {
	var zf ZoneFile
	if err := json.Unmarshal(data, &zf); err != nil {
		return nil, fmt.Errorf("parse zone: %w", err)
	}
	return &zf, nil
}

// Validate checks cross references against the catalog and reports every
// problem found.
func (zf *ZoneFile) Validate(catalog *kingdoms.Catalog) error {
	el := errors.NewErrorList()
	if zf.ID == "" {
		el.Add(fmt.Errorf("id must be set"))
	}
	if zf.ID != kingdoms.LobbyID {
		if _, ok := catalog.Get(zf.ID); !ok {
			el.Add(fmt.Errorf("zone %q: no kingdom with this id", zf.ID))
		}
	}

	known := func(dest string) bool {
		if dest == kingdoms.LobbyID {
			return true
		}
		_, ok := catalog.Get(dest)
		return ok
	}
	for i, d := range zf.Doors {
		if !known(d.Destination) {
			el.Add(fmt.Errorf("door %d: unknown destination %q", i, d.Destination))
		}
		if d.Destination == zf.ID {
			el.Add(fmt.Errorf("door %d: leads back into its own zone", i))
		}
		el.Add(checkColor(fmt.Sprintf("door %d", i), d.Color))
	}

	for i, a := range zf.Artifacts {
		if a.Title == "" {
			el.Add(fmt.Errorf("artifact %d: title must be set", i))
		}
		el.Add(checkColor(fmt.Sprintf("artifact %q", a.Title), a.Color))
	}

	declared := map[string]bool{}
	if k, ok := catalog.Get(zf.ID); ok {
		for _, c := range k.Collectibles {
			declared[c.ID] = true
		}
	}
	for _, c := range zf.Collectibles {
		if !declared[c.ID] {
			el.Add(fmt.Errorf("collectible %q: not declared for kingdom %q", c.ID, zf.ID))
		}
		el.Add(checkColor(fmt.Sprintf("collectible %q", c.ID), c.Color))
	}

	el.Add(checkColor("ambient sky", zf.Ambient.Sky))
	el.Add(checkColor("ambient floor", zf.Ambient.Floor))
	el.Add(checkColor("ambient dust", zf.Ambient.DustColor))
	for _, o := range zf.Objects {
		el.Add(o.validate())
	}
	return el.Err()
}

func checkColor(what, s string) error {
	if s == "" {
		return nil
	}
	if _, err := assets.ParseColor(s); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (o ObjectDef) validate() error {
	el := errors.NewErrorList()
	for _, raw := range o.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			el.Add(fmt.Errorf("object %q: %w", o.Name, err))
			continue
		}
		switch header.Type {
		case "MeshRenderer":
			var def meshRendererDef
			if err := json.Unmarshal(raw, &def); err != nil {
				el.Add(fmt.Errorf("object %q: %w", o.Name, err))
				continue
			}
			if _, ok := shapeByName[def.Mesh]; !ok {
				el.Add(fmt.Errorf("object %q: unknown mesh %q", o.Name, def.Mesh))
			}
			el.Add(checkColor(fmt.Sprintf("object %q", o.Name), def.Color))
		case "BoxCollider", "SphereCollider":
		default:
			el.Add(fmt.Errorf("object %q: unknown component %q", o.Name, header.Type))
		}
	}
	for _, c := range o.Children {
		el.Add(c.validate())
	}
	return el.Err()
}

// --- Building ---

// Build instantiates the zone. catalog supplies the lobby ring and the
// collectible names.
func (zf *ZoneFile) Build(catalog *kingdoms.Catalog) *Zone {
	z := &Zone{
		ID:    zf.ID,
		Spawn: vec(zf.Spawn),
		Ambient: Ambient{
			Sky:       assets.LookupColor(zf.Ambient.Sky),
			Floor:     assets.LookupColor(zf.Ambient.Floor),
			FloorSize: zf.Ambient.FloorSize,
			FogNear:   zf.Ambient.Fog[0],
			FogFar:    zf.Ambient.Fog[1],
			Dust:      zf.Ambient.Dust,
			DustColor: rl.Gold,
		},
	}
	if zf.Ambient.DustColor != "" {
		z.Ambient.DustColor = assets.LookupColor(zf.Ambient.DustColor)
	}

	if zf.LobbyDoors != nil {
		z.Entities = append(z.Entities, lobbyRing(catalog, *zf.LobbyDoors, &z.Labels)...)
	}
	for _, d := range zf.Doors {
		pos := vec(d.Position)
		if d.Style == "door" {
			z.Entities = append(z.Entities, NewDoor(d.Destination, d.Prompt, assets.LookupColor(d.Color), pos, d.Rotation))
		} else {
			z.Entities = append(z.Entities, NewPortal(d.Destination, d.Prompt, pos))
		}
	}
	for _, a := range zf.Artifacts {
		z.Entities = append(z.Entities, NewArtifact(ArtifactKind(a.Kind), assets.LookupColor(a.Color),
			a.Title, a.Description, a.Image, vec(a.Position)))
	}
	for _, c := range zf.Collectibles {
		color := coinGold
		if c.Color != "" {
			color = assets.LookupColor(c.Color)
		}
		z.Entities = append(z.Entities, NewCoin(c.ID, c.Prompt, color, vec(c.Position)))
	}

	for _, o := range zf.Objects {
		z.Scenery = append(z.Scenery, o.instantiate()...)
	}
	if z.Ambient.Dust > 0 {
		dust := engine.NewGameObject("Dust")
		h := fnv.New64a()
		h.Write([]byte(zf.ID))
		dust.AddComponent(components.NewDust(z.Ambient.Dust, int64(h.Sum64()), z.Ambient.DustColor))
		z.Scenery = append(z.Scenery, dust)
	}
	return z
}

func lobbyRing(catalog *kingdoms.Catalog, def lobbyDoorsDef, labels *[]Label) []*engine.GameObject {
	var doors []*engine.GameObject
	n := len(catalog.Kingdoms)
	for i, k := range catalog.Kingdoms {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pos := rl.Vector3{
			X: float32(math.Cos(angle)) * def.Radius,
			Y: def.Height,
			Z: float32(math.Sin(angle)) * def.Radius,
		}
		prompt := fmt.Sprintf("🏛️ Tekan E untuk masuk ke %s (%s)", k.Name, k.Period)
		doors = append(doors, NewDoor(k.ID, prompt, assets.LookupColor(k.Color), pos, FacingCenter(pos)))
		*labels = append(*labels, Label{Text: k.Name, Subtext: k.Period, Position: rl.Vector3{X: pos.X, Y: 4, Z: pos.Z}})
	}
	return doors
}

// instantiate builds one object per At position, or one at Position.
func (o ObjectDef) instantiate() []*engine.GameObject {
	if len(o.At) == 0 {
		return []*engine.GameObject{o.build(vec(o.Position))}
	}
	out := make([]*engine.GameObject, 0, len(o.At))
	for _, p := range o.At {
		out = append(out, o.build(vec(p)))
	}
	return out
}

func (o ObjectDef) build(pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(o.Name)
	g.Tags = o.Tags
	g.Transform.Position = pos
	g.Transform.Rotation = vec(o.Rotation)

	// Default scale to 1 if zero
	if o.Scale != [3]float32{} {
		g.Transform.Scale = vec(o.Scale)
	}

	for _, raw := range o.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			continue
		}

		switch header.Type {
		case "MeshRenderer":
			loadMeshRenderer(g, raw)
		case "BoxCollider":
			loadBoxCollider(g, raw)
		case "SphereCollider":
			loadSphereCollider(g, raw)
		}
	}

	for _, c := range o.Children {
		g.AddChild(c.build(vec(c.Position)))
	}
	return g
}

func loadMeshRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	shape, ok := shapeByName[def.Mesh]
	if !ok {
		return
	}
	var size rl.Vector3
	switch len(def.MeshSize) {
	case 1:
		size = rl.Vector3{X: def.MeshSize[0]}
	case 2:
		// plane: width and length; cylinder/cone: radius and height
		if shape == components.ShapePlane {
			size = rl.Vector3{X: def.MeshSize[0], Z: def.MeshSize[1]}
		} else {
			size = rl.Vector3{X: def.MeshSize[0], Y: def.MeshSize[1]}
		}
	case 3:
		size = rl.Vector3{X: def.MeshSize[0], Y: def.MeshSize[1], Z: def.MeshSize[2]}
	default:
		return
	}
	m := components.NewMeshRenderer(shape, size, assets.LookupColor(def.Color))
	if def.Emissive != "" {
		m.Emissive = assets.LookupColor(def.Emissive)
	}
	g.AddComponent(m)
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewBoxCollider(vec(def.Size))
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	g.AddComponent(components.NewSphereCollider(def.Radius))
}
