package components

import (
	"fmt"

	"nusantara/internal/engine"
)

type Role int

const (
	RoleDoor Role = iota
	RoleArtifact
	RoleCollectible
)

func (r Role) String() string {
	switch r {
	case RoleDoor:
		return "door"
	case RoleArtifact:
		return "artifact"
	case RoleCollectible:
		return "collectible"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Interactable marks the root of an entity the player can hover and
// activate. Which payload fields are meaningful depends on Role.
type Interactable struct {
	engine.BaseComponent
	Role   Role
	Prompt string

	// Door
	Destination string

	// Artifact
	Title       string
	Description string
	ImagePath   string

	// Collectible
	CollectibleID string
}

func NewDoor(destination, prompt string) *Interactable {
	return &Interactable{Role: RoleDoor, Destination: destination, Prompt: prompt}
}

func NewArtifact(title, description, imagePath string) *Interactable {
	return &Interactable{
		Role:        RoleArtifact,
		Title:       title,
		Description: description,
		ImagePath:   imagePath,
		Prompt:      fmt.Sprintf("🔍 Klik untuk info: %s", title),
	}
}

func NewCollectible(id, prompt string) *Interactable {
	return &Interactable{Role: RoleCollectible, CollectibleID: id, Prompt: prompt}
}

// Passable reports whether the player may walk through the entity.
// Only artifacts block movement.
func (i *Interactable) Passable() bool {
	return i.Role != RoleArtifact
}
