// Package hud is the 2D layer over the world: panels, prompts, the
// collectible tracker, notifications and the zone transition fade.
package hud

import (
	"nusantara/internal/collectibles"
	"nusantara/internal/kingdoms"
)

// Bridge is everything gameplay code may ask of the UI. Calls are fire and
// forget; the UI never calls back into the caller synchronously.
type Bridge interface {
	ShowInfoPanel(k kingdoms.Kingdom)
	ShowQuizPanel(s *kingdoms.Session)
	ShowArtifactPanel(title, description, imagePath string)
	ShowPrompt(text string)
	HidePrompt()
	ShowTransitionOverlay()
	HideTransitionOverlay()
	RenderCollectibleHUD(stats collectibles.Stats, records []collectibles.Record)
	Notify(message string, durationMs int)
}
