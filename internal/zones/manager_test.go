package zones

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nusantara/assets"
	"nusantara/internal/collectibles"
	"nusantara/internal/components"
	"nusantara/internal/engine"
	"nusantara/internal/interaction"
	"nusantara/internal/kingdoms"
	"nusantara/internal/player"
	"nusantara/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeBridge struct {
	calls   []string
	info    []kingdoms.Kingdom
	quiz    *kingdoms.Session
	stats   collectibles.Stats
	records []collectibles.Record
	prompt  string
}

func (b *fakeBridge) ShowInfoPanel(k kingdoms.Kingdom) {
	b.calls = append(b.calls, "info")
	b.info = append(b.info, k)
}

func (b *fakeBridge) ShowQuizPanel(s *kingdoms.Session) {
	b.calls = append(b.calls, "quiz")
	b.quiz = s
}

func (b *fakeBridge) ShowArtifactPanel(title, description, imagePath string) {
	b.calls = append(b.calls, "artifact")
}

func (b *fakeBridge) ShowPrompt(text string) { b.prompt = text }
func (b *fakeBridge) HidePrompt()            { b.prompt = "" }

func (b *fakeBridge) ShowTransitionOverlay() { b.calls = append(b.calls, "fade-out") }
func (b *fakeBridge) HideTransitionOverlay() { b.calls = append(b.calls, "fade-in") }

func (b *fakeBridge) RenderCollectibleHUD(stats collectibles.Stats, records []collectibles.Record) {
	b.calls = append(b.calls, "hud")
	b.stats = stats
	b.records = records
}

func (b *fakeBridge) Notify(message string, durationMs int) {
	b.calls = append(b.calls, "notify")
}

// flakyProvider fails to load the zones listed in broken.
type flakyProvider struct {
	world.Provider
	broken map[string]bool
}

var errBroken = errors.New("broken layout")

func (p flakyProvider) LoadZone(id string) (*world.Zone, error) {
	if p.broken[id] {
		return nil, errBroken
	}
	return p.Provider.LoadZone(id)
}

type fixture struct {
	manager    *Manager
	bridge     *fakeBridge
	world      *world.World
	store      *collectibles.Store
	detector   *interaction.Detector
	controller *player.Controller
}

func newFixture(t *testing.T, broken ...string) *fixture {
	t.Helper()
	log, _ := test.NewNullLogger()

	catalog, err := kingdoms.Load(assets.FS, assets.KingdomsFile)
	require.NoError(t, err)
	store := collectibles.NewStore()
	require.NoError(t, catalog.Seed(store))

	files, err := world.NewFileProvider(assets.FS, assets.ZonesDir, catalog, log)
	require.NoError(t, err)
	provider := flakyProvider{Provider: files, broken: map[string]bool{}}
	for _, id := range broken {
		provider.broken[id] = true
	}

	bridge := &fakeBridge{}
	w := world.New(engine.NewGameObject("Player"), log)
	detector := interaction.NewDetector(bridge, log)
	controller := player.NewController(rl.Vector3{})

	m := NewManager(Deps{
		World:    w,
		Provider: provider,
		Detector: detector,
		Store:    store,
		Catalog:  catalog,
		Bridge:   bridge,
		Player:   controller,
	}, log)
	return &fixture{manager: m, bridge: bridge, world: w, store: store, detector: detector, controller: controller}
}

func TestStartLobby(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start(kingdoms.LobbyID))

	assert.Equal(t, kingdoms.LobbyID, f.manager.CurrentZone())
	assert.Equal(t, Idle, f.manager.State())
	assert.Equal(t, []string{"hud"}, f.bridge.calls)
	assert.Equal(t, collectibles.Stats{Found: 0, Total: 24}, f.bridge.stats)
	assert.Empty(t, f.bridge.records)
	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 5}, f.controller.Position)
}

func TestStartUnknownZone(t *testing.T) {
	f := newFixture(t)
	err := f.manager.Start("atlantis")
	assert.ErrorIs(t, err, world.ErrUnknownZone)
	assert.Equal(t, "", f.manager.CurrentZone())
}

func TestEnterRunsTransitionInOrder(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start(kingdoms.LobbyID))
	f.bridge.calls = nil

	var entered []string
	f.manager.Entered.AddListener(func(id string) { entered = append(entered, id) })

	require.True(t, f.manager.Enter("kutai"))
	assert.Equal(t, FadingOut, f.manager.State())
	assert.False(t, f.manager.Enter("sriwijaya"), "second request while in flight")

	f.manager.Tick(0.5)
	assert.Equal(t, FadingOut, f.manager.State())
	assert.Equal(t, kingdoms.LobbyID, f.manager.CurrentZone(), "old zone stays until teardown")

	f.manager.Tick(0.4)
	assert.Equal(t, FadingIn, f.manager.State())
	assert.Equal(t, "kutai", f.manager.CurrentZone())
	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 10}, f.controller.Position)
	require.Len(t, f.bridge.info, 1)
	assert.Equal(t, "Kerajaan Kutai", f.bridge.info[0].Name)
	assert.Len(t, f.bridge.records, 3)
	assert.False(t, f.manager.Enter(kingdoms.LobbyID), "still fading in")

	f.manager.Tick(0.05)
	assert.Equal(t, FadingIn, f.manager.State())
	f.manager.Tick(0.06)
	assert.Equal(t, Idle, f.manager.State())

	assert.Equal(t, []string{"fade-out", "hud", "info", "fade-in"}, f.bridge.calls)
	assert.Equal(t, []string{"kutai"}, entered)
}

func TestEnterUnknownDestination(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start(kingdoms.LobbyID))
	f.bridge.calls = nil

	assert.False(t, f.manager.Enter("atlantis"))
	assert.Equal(t, Idle, f.manager.State())
	assert.Empty(t, f.bridge.calls)
}

func TestFoundCollectiblesAreNotPresentedAgain(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.MarkFound("kutai_coin1")
	require.NoError(t, err)

	require.NoError(t, f.manager.Start("kutai"))
	coins := f.world.Zone.Collectibles()
	require.Len(t, coins, 2)
	for _, c := range coins {
		assert.NotEqual(t, "kutai_coin1", engine.GetComponent[*components.Interactable](c).CollectibleID)
	}

	require.Len(t, f.bridge.records, 3)
	assert.True(t, f.bridge.records[0].Found)
	assert.Equal(t, 1, f.bridge.stats.Found)
}

func TestLoadFailureKeepsCurrentZone(t *testing.T) {
	f := newFixture(t, "kutai")
	require.NoError(t, f.manager.Start(kingdoms.LobbyID))
	before := len(f.world.Scene.GameObjects)

	require.True(t, f.manager.Enter("kutai"))
	f.manager.Tick(1)
	assert.Equal(t, FadingIn, f.manager.State())
	assert.Equal(t, kingdoms.LobbyID, f.manager.CurrentZone())
	assert.Len(t, f.world.Scene.GameObjects, before)

	f.manager.Tick(1)
	assert.Equal(t, Idle, f.manager.State())
	assert.Equal(t, "fade-in", f.bridge.calls[len(f.bridge.calls)-1])
}

func TestTeardownReleasesZoneAndClearsHover(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start("kutai"))

	hovered := f.detector.Update(rl.Vector3{X: 0, Y: 1.5, Z: 25}, rl.Vector3{Z: -1})
	require.NotNil(t, hovered)
	assert.Equal(t, "🚪 Kembali ke Lobby", f.bridge.prompt)
	old := f.world.Zone.Roots()

	require.True(t, f.manager.Enter(kingdoms.LobbyID))
	f.manager.Tick(1)

	assert.Equal(t, kingdoms.LobbyID, f.manager.CurrentZone())
	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 5}, f.controller.Position)
	assert.Nil(t, f.detector.Hovered())
	assert.Equal(t, "", f.bridge.prompt)
	for _, g := range old {
		assert.True(t, g.Released(), g.Name)
		assert.False(t, f.world.Scene.Contains(g), g.Name)
	}
	assert.True(t, f.world.Scene.Contains(f.world.Player))
	assert.False(t, f.world.Player.Released())
}

func TestInfoAndQuizPayload(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start("kutai"))

	require.Len(t, f.bridge.info, 1)
	k := f.bridge.info[0]
	assert.Equal(t, "Kerajaan Kutai", k.Name)
	assert.Equal(t, "400 M", k.Period)
	assert.Equal(t, "Kalimantan Timur", k.Location)
	assert.Contains(t, k.Description, "Sungai Mahakam")
	assert.Contains(t, k.FunFact, "Mulawarman")

	require.True(t, f.manager.RequestQuiz())
	q := f.bridge.quiz.Quiz
	assert.Equal(t, "Di manakah lokasi Kerajaan Kutai berada?", q.Question)
	assert.Equal(t, []string{"Jawa", "Sumatera", "Kalimantan", "Sulawesi"}, q.Options)
	assert.Equal(t, 2, q.Correct)
	assert.Contains(t, q.Explanation, "Kalimantan Timur")
}

func TestPlayerReattached(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start(kingdoms.LobbyID))
	f.world.Scene.RemoveGameObject(f.world.Player)

	require.True(t, f.manager.Enter("majapahit"))
	f.manager.Tick(1)
	assert.True(t, f.world.Scene.Contains(f.world.Player))
}

func TestQuizSessions(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start(kingdoms.LobbyID))
	assert.False(t, f.manager.RequestQuiz(), "no quiz in the lobby")
	_, ok := f.manager.AnswerQuiz(0)
	assert.False(t, ok)

	require.NoError(t, f.manager.Start("kutai"))
	var results []kingdoms.AnswerResult
	f.manager.QuizAnswered.AddListener(func(r kingdoms.AnswerResult) { results = append(results, r) })

	require.True(t, f.manager.RequestQuiz())
	require.NotNil(t, f.bridge.quiz)
	assert.Equal(t, "kutai", f.bridge.quiz.KingdomID)

	r, ok := f.manager.AnswerQuiz(2)
	require.True(t, ok)
	assert.True(t, r.Correct)
	_, ok = f.manager.AnswerQuiz(0)
	assert.False(t, ok, "first answer is final")
	require.Len(t, results, 1)

	require.True(t, f.manager.RequestQuiz())
	r, ok = f.manager.AnswerQuiz(0)
	require.True(t, ok)
	assert.False(t, r.Correct)
	assert.Len(t, results, 2)
}

func TestQuizUnavailableDuringTransition(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.manager.Start("kutai"))
	require.True(t, f.manager.Enter(kingdoms.LobbyID))
	assert.False(t, f.manager.RequestQuiz())
}
