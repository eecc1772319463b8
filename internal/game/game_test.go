package game

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nusantara/internal/audio"
	"nusantara/internal/components"
	"nusantara/internal/config"
	"nusantara/internal/engine"
	"nusantara/internal/hud"
	"nusantara/internal/kingdoms"
	"nusantara/internal/player"
	"nusantara/internal/zones"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const frame = float32(1.0 / 60)

func newGame(t *testing.T, zone string) *Game {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{"NUSANTARA_START_ZONE": zone})
	require.NoError(t, err)
	log, _ := test.NewNullLogger()
	g, err := New(cfg, audio.NewSilent(log), log)
	require.NoError(t, err)
	return g
}

func entityWithRole(t *testing.T, g *Game, role components.Role) (*engine.GameObject, *components.Interactable) {
	t.Helper()
	for _, e := range g.World.Zone.Entities {
		if in := engine.GetComponent[*components.Interactable](e); in != nil && in.Role == role {
			return e, in
		}
	}
	t.Fatalf("no %s in zone %s", role, g.World.Zone.ID)
	return nil, nil
}

func stepFor(g *Game, seconds float32, in Input) {
	for t := float32(0); t < seconds; t += frame {
		g.Step(frame, in)
	}
}

func TestNewStartsInConfiguredZone(t *testing.T) {
	g := newGame(t, kingdoms.LobbyID)
	assert.Equal(t, kingdoms.LobbyID, g.Zones.CurrentZone())
	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 5}, g.Controller.Position)

	stats, _ := g.Overlay.Collected()
	assert.Equal(t, 24, stats.Total)
	assert.True(t, g.World.Scene.Contains(g.World.Player))
}

func TestNewRejectsUnknownStartZone(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"NUSANTARA_START_ZONE": "atlantis"})
	require.NoError(t, err)
	log, _ := test.NewNullLogger()
	_, err = New(cfg, audio.NewSilent(log), log)
	assert.Error(t, err)
}

func TestStepMovesPlayerAwayFromCamera(t *testing.T) {
	g := newGame(t, kingdoms.LobbyID)
	g.Step(frame, Input{Move: player.Input{Forward: true}})

	p := g.Controller.Position
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 4.95, p.Z, 1e-5)
	assert.True(t, g.Controller.Walking)
}

func TestModalPanelBlocksMovement(t *testing.T) {
	g := newGame(t, "kutai")
	require.True(t, g.Overlay.ModalOpen(), "kingdom info opens on entry")

	before := g.Controller.Position
	g.Step(frame, Input{Move: player.Input{Forward: true}})
	assert.Equal(t, before, g.Controller.Position)

	g.Step(frame, Input{Close: true})
	assert.False(t, g.Overlay.ModalOpen())
	g.Step(frame, Input{Move: player.Input{Forward: true}})
	assert.NotEqual(t, before, g.Controller.Position)
}

func TestCollectCoin(t *testing.T) {
	g := newGame(t, "kutai")
	coin, in := entityWithRole(t, g, components.RoleCollectible)
	require.Equal(t, "kutai_coin1", in.CollectibleID)

	g.activate(coin, in, true)
	assert.False(t, g.Store.IsFound("kutai_coin1"), "interact key does not collect")

	g.activate(coin, in, false)
	assert.True(t, g.Store.IsFound("kutai_coin1"))
	msg, ok := g.Overlay.Notice()
	require.True(t, ok)
	assert.Equal(t, "✨ 🪙 Koin Emas Kutai ditemukan!", msg)
	stats, records := g.Overlay.Collected()
	assert.Equal(t, 1, stats.Found)
	require.Len(t, records, 3)
	assert.True(t, records[0].Found)

	// A second click during the animation changes nothing.
	g.Overlay.Notify("", 0)
	g.activate(coin, in, false)
	_, ok = g.Overlay.Notice()
	assert.False(t, ok)

	g.Overlay.Close()
	stepFor(g, 0.5, Input{})
	assert.True(t, coin.Released())
	assert.False(t, g.World.Scene.Contains(coin))
	assert.Len(t, g.World.Zone.Collectibles(), 2)
}

func TestArtifactOpensOnClickOnly(t *testing.T) {
	g := newGame(t, "kutai")
	g.Overlay.Close()
	art, in := entityWithRole(t, g, components.RoleArtifact)

	g.activate(art, in, true)
	assert.False(t, g.Overlay.ModalOpen())

	g.activate(art, in, false)
	assert.Equal(t, hud.PanelArtifact, g.Overlay.Panel())
	assert.Equal(t, "Prasasti Yupa", g.Overlay.Artifact().Title)
}

func TestDoorTransitionViaInteractKey(t *testing.T) {
	g := newGame(t, "kutai")
	g.Overlay.Close()

	// Look up at the exit portal from in front of the player.
	g.Camera.Horizontal = math.Pi
	g.Camera.Vertical = -math.Pi / 6
	g.Camera.Snap(g.Controller.Position)

	g.Step(frame, Input{Interact: true})
	hovered := g.Detector.Hovered()
	require.NotNil(t, hovered)
	assert.Equal(t, "Portal_lobby", hovered.Name)
	assert.Equal(t, zones.FadingOut, g.Zones.State())

	stepFor(g, 1, Input{})
	assert.Equal(t, zones.Idle, g.Zones.State())
	assert.Equal(t, kingdoms.LobbyID, g.Zones.CurrentZone())
	assert.InDelta(t, 5, g.Controller.Position.Z, 1e-5)
	assert.True(t, hovered.Released())
}

func TestPickingContinuesDuringFadeOut(t *testing.T) {
	g := newGame(t, "kutai")
	g.Overlay.Close()
	g.Camera.Horizontal = math.Pi
	g.Camera.Vertical = -math.Pi / 6
	g.Camera.Snap(g.Controller.Position)

	g.Step(frame, Input{Interact: true})
	require.Equal(t, zones.FadingOut, g.Zones.State())

	// Looking back over the player's shoulder at open ground.
	g.Camera.Horizontal = 0
	g.Camera.Vertical = 0
	g.Camera.Snap(g.Controller.Position)
	g.Step(frame, Input{Click: true})

	assert.Equal(t, zones.FadingOut, g.Zones.State())
	assert.Nil(t, g.Detector.Hovered())
	_, visible := g.Overlay.Prompt()
	assert.False(t, visible)
	assert.Equal(t, "kutai", g.Zones.CurrentZone())
}

func TestQuizThroughOverlay(t *testing.T) {
	g := newGame(t, "kutai")
	g.Overlay.QuizRequested.Invoke("kutai")
	require.Equal(t, hud.PanelQuiz, g.Overlay.Panel())

	g.Overlay.AnswerSelected.Invoke(2)
	s := g.Overlay.Quiz()
	require.True(t, s.Answered())
	assert.True(t, s.Result().Correct)

	g.Overlay.AnswerSelected.Invoke(0)
	assert.Equal(t, 2, s.Result().Selected)
}

func TestToggles(t *testing.T) {
	g := newGame(t, kingdoms.LobbyID)
	g.Step(frame, Input{ToggleLock: true})
	assert.True(t, g.Controller.LockFacing)
	g.Step(frame, Input{ToggleLock: true})
	assert.False(t, g.Controller.LockFacing)
}
