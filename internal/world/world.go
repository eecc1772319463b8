package world

import (
	"github.com/sirupsen/logrus"

	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene graph: the player plus the objects of the active
// zone. It is the scene's WorldAccess.
type World struct {
	Scene  *engine.Scene
	Player *engine.GameObject
	Zone   *Zone
	log    logrus.FieldLogger
}

func New(player *engine.GameObject, log logrus.FieldLogger) *World {
	w := &World{
		Scene:  engine.NewScene("Nusantara"),
		Player: player,
		log:    log,
	}
	w.Scene.World = w
	w.Scene.AddGameObject(player)
	return w
}

// Destroy removes g from the zone and the scene and releases it.
func (w *World) Destroy(g *engine.GameObject) {
	if w.Zone != nil {
		w.Zone.Remove(g)
	}
	if w.Scene.Contains(g) {
		w.Scene.RemoveGameObject(g)
	}
	g.Release()
	w.log.WithField("object", g.Name).Debug("Destroyed")
}

// Teardown removes everything but the player and releases it.
func (w *World) Teardown() int {
	n := w.Scene.Clear(w.Player)
	if w.Zone != nil {
		w.log.WithFields(logrus.Fields{"zone": w.Zone.ID, "removed": n}).Debug("Zone torn down")
	}
	w.Zone = nil
	return n
}

// Install adds a freshly built zone to the scene.
func (w *World) Install(z *Zone) {
	w.Zone = z
	w.Scene.Name = z.ID
	for _, g := range z.Roots() {
		w.Scene.AddGameObject(g)
	}
	w.Scene.Start()
}

// AttachPlayer re-adds the player if something detached it. It reports
// whether the player had to be re-added.
func (w *World) AttachPlayer() bool {
	if w.Scene.Contains(w.Player) {
		return false
	}
	w.Scene.AddGameObject(w.Player)
	return true
}

// Obstacles returns positions that block the player in the active zone.
func (w *World) Obstacles() []rl.Vector3 {
	if w.Zone == nil {
		return nil
	}
	return w.Zone.Obstacles()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
