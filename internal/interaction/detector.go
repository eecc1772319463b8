// Package interaction finds the entity under the center of view and keeps
// its hover highlight and prompt in sync.
package interaction

import (
	"github.com/sirupsen/logrus"

	"nusantara/internal/components"
	"nusantara/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const DefaultMaxDistance = 100

// PromptSink receives hover prompts.
type PromptSink interface {
	ShowPrompt(text string)
	HidePrompt()
}

type pickable struct {
	collider components.Collider
	entity   *engine.GameObject // nil for scenery
}

// Detector resolves the hovered entity once per frame.
type Detector struct {
	MaxDistance float32

	log     logrus.FieldLogger
	prompts PromptSink
	scene   *engine.Scene
	index   []pickable
	hover   engine.GameObjectRef
}

func NewDetector(prompts PromptSink, log logrus.FieldLogger) *Detector {
	return &Detector{
		MaxDistance: DefaultMaxDistance,
		log:         log,
		prompts:     prompts,
	}
}

// Index rebuilds the geometry to entity map for a freshly loaded zone.
// Every collider under an interactive root resolves to that root; colliders
// under scenery still occlude but never hover.
func (d *Detector) Index(scene *engine.Scene, entities, scenery []*engine.GameObject) {
	d.scene = scene
	d.index = d.index[:0]
	for _, e := range entities {
		for _, c := range engine.GetComponentsInChildren[components.Collider](e) {
			d.index = append(d.index, pickable{collider: c, entity: e})
		}
	}
	for _, s := range scenery {
		for _, c := range engine.GetComponentsInChildren[components.Collider](s) {
			d.index = append(d.index, pickable{collider: c})
		}
	}
	d.log.WithFields(logrus.Fields{
		"entities": len(entities),
		"pickable": len(d.index),
	}).Debug("Interaction index rebuilt")
}

// Forget removes an entity from picking, e.g. a collectible being picked up.
func (d *Detector) Forget(e *engine.GameObject) {
	kept := d.index[:0]
	for _, p := range d.index {
		if p.entity != e {
			kept = append(kept, p)
		}
	}
	d.index = kept
	if d.hover.UID == e.UID {
		d.setHover(nil)
	}
}

// Reset drops the hover and the index. Used when a zone is torn down.
func (d *Detector) Reset() {
	d.setHover(nil)
	d.index = nil
	d.scene = nil
}

// Hovered returns the hovered entity root, or nil.
func (d *Detector) Hovered() *engine.GameObject {
	return d.hover.Get(d.scene)
}

// HoveredInteractable is a shortcut for the hovered entity's Interactable.
func (d *Detector) HoveredInteractable() (*engine.GameObject, *components.Interactable) {
	e := d.Hovered()
	if e == nil {
		return nil, nil
	}
	return e, engine.GetComponent[*components.Interactable](e)
}

// Update casts a ray from origin along dir and updates the hover state.
func (d *Detector) Update(origin, dir rl.Vector3) *engine.GameObject {
	dir = rl.Vector3Normalize(dir)
	var nearest *pickable
	best := d.MaxDistance
	for i := range d.index {
		p := &d.index[i]
		if g := p.collider.GetGameObject(); g == nil || !g.Active {
			continue
		}
		hit, ok := p.collider.Raycast(origin, dir, best)
		if ok && hit.Distance <= best {
			best = hit.Distance
			nearest = p
		}
	}

	var target *engine.GameObject
	if nearest != nil {
		target = nearest.entity
	}
	if target == nil && !d.hover.IsValid() {
		return nil
	}
	if target != nil && target.UID == d.hover.UID {
		return target
	}
	d.setHover(target)
	return target
}

func (d *Detector) setHover(target *engine.GameObject) {
	if prev := d.hover.Get(d.scene); prev != nil {
		highlight(prev, false)
	}
	d.hover.Set(target)

	if target == nil {
		d.prompts.HidePrompt()
		return
	}
	highlight(target, true)
	if in := engine.GetComponent[*components.Interactable](target); in != nil && in.Prompt != "" {
		d.prompts.ShowPrompt(in.Prompt)
	} else {
		d.prompts.HidePrompt()
	}
}

func highlight(e *engine.GameObject, on bool) {
	for _, h := range engine.GetComponentsInChildren[engine.Highlighter](e) {
		h.SetHighlighted(on)
	}
}
