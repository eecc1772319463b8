package hud

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nusantara/internal/assets"
	"nusantara/internal/collectibles"
	"nusantara/internal/kingdoms"
)

func newOverlay() *Overlay {
	log, _ := test.NewNullLogger()
	return NewOverlay(log)
}

func TestPromptShowHide(t *testing.T) {
	o := newOverlay()
	_, visible := o.Prompt()
	assert.False(t, visible)

	o.ShowPrompt("🚪 Kembali ke Lobby")
	text, visible := o.Prompt()
	assert.True(t, visible)
	assert.Equal(t, "🚪 Kembali ke Lobby", text)

	o.HidePrompt()
	_, visible = o.Prompt()
	assert.False(t, visible)
}

func TestNotifyExpires(t *testing.T) {
	o := newOverlay()
	o.Notify("✨ 🪙 Koin Emas Kutai ditemukan!", 2000)

	o.Update(1.5)
	msg, ok := o.Notice()
	assert.True(t, ok)
	assert.Equal(t, "✨ 🪙 Koin Emas Kutai ditemukan!", msg)

	o.Update(0.6)
	_, ok = o.Notice()
	assert.False(t, ok)
}

func TestNotifyReplaces(t *testing.T) {
	o := newOverlay()
	o.Notify("first", 2000)
	o.Update(1.9)
	o.Notify("second", 2000)
	o.Update(1)
	msg, ok := o.Notice()
	assert.True(t, ok)
	assert.Equal(t, "second", msg)
}

func TestTransitionFade(t *testing.T) {
	o := newOverlay()
	assert.Equal(t, float32(0), o.FadeAlpha())

	o.ShowTransitionOverlay()
	assert.Equal(t, float32(0), o.FadeAlpha())
	o.Update(FadeDuration / 2)
	mid := o.FadeAlpha()
	assert.Greater(t, mid, float32(0.5))
	assert.Less(t, mid, float32(1))
	o.Update(FadeDuration)
	assert.InDelta(t, 1, o.FadeAlpha(), 1e-6)

	o.HideTransitionOverlay()
	assert.InDelta(t, 1, o.FadeAlpha(), 1e-6)
	o.Update(FadeDuration)
	assert.InDelta(t, 0, o.FadeAlpha(), 1e-6)
}

func TestPanels(t *testing.T) {
	o := newOverlay()
	assert.False(t, o.ModalOpen())

	k := kingdoms.Kingdom{ID: "kutai", Name: "Kerajaan Kutai", Quiz: kingdoms.Quiz{Options: []string{"a", "b"}}}
	o.ShowInfoPanel(k)
	assert.Equal(t, PanelInfo, o.Panel())
	assert.Equal(t, "Kerajaan Kutai", o.Info().Name)
	assert.True(t, o.ModalOpen())

	o.ShowQuizPanel(nil)
	assert.Equal(t, PanelInfo, o.Panel())

	s := kingdoms.NewSession(k)
	o.ShowQuizPanel(s)
	assert.Equal(t, PanelQuiz, o.Panel())
	assert.Same(t, s, o.Quiz())

	o.Close()
	assert.False(t, o.ModalOpen())
}

func TestArtifactImageSuppressedWhenMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "yupa.jpg"), []byte("jpg"), 0o644))
	assets.Init(dir)

	o := newOverlay()
	o.ShowArtifactPanel("Prasasti Yupa", "Tujuh prasasti", "/images/yupa.jpg")
	assert.Equal(t, PanelArtifact, o.Panel())
	assert.Equal(t, "/images/yupa.jpg", o.Artifact().Image)

	o.ShowArtifactPanel("Miniatur Borobudur", "Candi", "/images/nope.jpg")
	assert.Equal(t, "", o.Artifact().Image)
	assert.Equal(t, "Miniatur Borobudur", o.Artifact().Title)

	o.ShowArtifactPanel("Arca Buddha", "Patung", "")
	assert.Equal(t, "", o.Artifact().Image)
}

func TestRenderCollectibleHUDCopies(t *testing.T) {
	o := newOverlay()
	records := []collectibles.Record{{ID: "kutai_coin1", Name: "Koin Emas Kutai"}}
	o.RenderCollectibleHUD(collectibles.Stats{Found: 0, Total: 24}, records)
	records[0].Found = true

	stats, got := o.Collected()
	assert.Equal(t, 24, stats.Total)
	require.Len(t, got, 1)
	assert.False(t, got[0].Found)
}

func TestWrapText(t *testing.T) {
	width := func(s string) int32 { return int32(len(s)) }

	lines := wrapText("satu dua tiga empat", 9, width)
	assert.Equal(t, []string{"satu dua", "tiga", "empat"}, lines)

	lines = wrapText("supercalifragilistic kata", 5, width)
	assert.Equal(t, []string{"supercalifragilistic", "kata"}, lines)

	lines = wrapText("a\n\nb", 10, width)
	assert.Equal(t, []string{"a", "", "b"}, lines)

	for _, l := range wrapText(strings.Repeat("kata ", 40), 30, width) {
		assert.LessOrEqual(t, len(l), 30)
	}
}
