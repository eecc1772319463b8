package engine

// Scene is the render graph of the active zone plus the player.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject adds a root object. Its descendants become resolvable by UID.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	s.GameObjects = append(s.GameObjects, g)
	g.Traverse(func(obj *GameObject) {
		obj.Scene = s
		s.uidMap[obj.UID] = obj
	})
}

// RemoveGameObject detaches g and its descendants from the scene.
// Resources are not released; see Destroy.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	g.Traverse(func(obj *GameObject) {
		delete(s.uidMap, obj.UID)
		obj.Scene = nil
	})
}

// Contains reports whether g is a root object of the scene.
func (s *Scene) Contains(g *GameObject) bool {
	for _, obj := range s.GameObjects {
		if obj == g {
			return true
		}
	}
	return false
}

// Clear removes every root object except those in keep and releases the
// removed objects' resources. It returns the number of removed roots.
func (s *Scene) Clear(keep ...*GameObject) int {
	kept := make([]*GameObject, 0, len(keep))
	removed := 0
	for _, g := range s.GameObjects {
		if containsObject(keep, g) {
			kept = append(kept, g)
			continue
		}
		g.Traverse(func(obj *GameObject) {
			delete(s.uidMap, obj.UID)
			obj.Scene = nil
		})
		g.Release()
		removed++
	}
	s.GameObjects = kept
	return removed
}

func containsObject(list []*GameObject, g *GameObject) bool {
	for _, obj := range list {
		if obj == g {
			return true
		}
	}
	return false
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Components may destroy their own object during Update.
	roots := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range roots {
		g.Update(deltaTime)
	}
}
