package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type releaseCounter struct {
	BaseComponent
	releases int
}

func (r *releaseCounter) Release() { r.releases++ }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("Door")

	if obj.Name != "Door" {
		t.Errorf("Expected name 'Door', got '%s'", obj.Name)
	}
	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}
	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")

	if a.UID == b.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Coin")
	obj.Tags = []string{"collectible", "kutai"}

	if !obj.HasTag("collectible") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("door") {
		t.Error("HasTag should return false for non-existent tag")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if child.Root() != parent {
		t.Error("Root should walk up to the parent")
	}

	parent.RemoveChild(child)
	if len(parent.Children) != 0 || child.Parent != nil {
		t.Error("RemoveChild should detach both sides")
	}
}

func TestGetComponentsInChildren(t *testing.T) {
	root := NewGameObject("Root")
	a := NewGameObject("A")
	b := NewGameObject("B")
	root.AddChild(a)
	a.AddChild(b)

	a.AddComponent(&releaseCounter{})
	b.AddComponent(&releaseCounter{})

	found := GetComponentsInChildren[*releaseCounter](root)
	if len(found) != 2 {
		t.Errorf("Expected 2 components, got %d", len(found))
	}
	if GetComponent[*releaseCounter](root) != nil {
		t.Error("GetComponent should not look at children")
	}
}

func TestGameObjectReleaseOnce(t *testing.T) {
	root := NewGameObject("Root")
	child := NewGameObject("Child")
	root.AddChild(child)
	counter := &releaseCounter{}
	child.AddComponent(counter)

	root.Release()
	root.Release()

	if counter.releases != 1 {
		t.Errorf("Expected exactly one release, got %d", counter.releases)
	}
	if !child.Released() {
		t.Error("Child should be marked released")
	}
}

func TestWorldPositionAppliesParentYaw(t *testing.T) {
	parent := NewGameObject("Door")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 1.5, Z: 0}
	parent.Transform.Rotation.Y = 90

	frame := NewGameObject("Frame")
	frame.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(frame)

	got := frame.WorldPosition()
	want := rl.Vector3{X: 10, Y: 1.5, Z: -1}
	if math.Abs(float64(got.X-want.X)) > 1e-5 || math.Abs(float64(got.Z-want.Z)) > 1e-5 || got.Y != want.Y {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}
	obj.Start()
}
