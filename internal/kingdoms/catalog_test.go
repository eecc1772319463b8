package kingdoms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nusantara/assets"
	"nusantara/internal/collectibles"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := Load(assets.FS, assets.KingdomsFile)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"kutai", "tarumanegara", "kalingga", "sriwijaya",
		"mataram", "sailendra", "kediri", "majapahit",
	}, c.IDs())

	k, ok := c.Get("kutai")
	require.True(t, ok)
	assert.Equal(t, "Kerajaan Kutai", k.Name)
	assert.Equal(t, "400 M", k.Period)
	assert.Equal(t, 2, k.Quiz.Correct)
	assert.Equal(t, "Kalimantan", k.Quiz.Options[k.Quiz.Correct])
	require.Len(t, k.Collectibles, 3)
	assert.Equal(t, "kutai_coin1", k.Collectibles[0].ID)

	tm, ok := c.Get("tarumanegara")
	require.True(t, ok)
	assert.Equal(t, "taruma_coin1", tm.Collectibles[0].ID)

	_, ok = c.Get(LobbyID)
	assert.False(t, ok)
}

func TestSeedStore(t *testing.T) {
	c, err := Load(assets.FS, assets.KingdomsFile)
	require.NoError(t, err)

	store := collectibles.NewStore()
	require.NoError(t, c.Seed(store))

	assert.Equal(t, collectibles.Stats{Found: 0, Total: 24}, store.Stats())
	assert.Equal(t, c.IDs(), store.Zones())
	assert.Len(t, store.ListForZone("majapahit"), 3)
}

func TestCollectEverything(t *testing.T) {
	c, err := Load(assets.FS, assets.KingdomsFile)
	require.NoError(t, err)
	store := collectibles.NewStore()
	require.NoError(t, c.Seed(store))

	for _, zone := range store.Zones() {
		first := store.ListForZone(zone)
		assert.Equal(t, first, store.ListForZone(zone), "listing is repeatable")
		for _, r := range first {
			_, err := store.MarkFound(r.ID)
			require.NoError(t, err, r.ID)
		}
	}

	assert.Equal(t, collectibles.Stats{Found: 24, Total: 24}, store.Stats())
	for _, zone := range store.Zones() {
		for _, r := range store.ListForZone(zone) {
			assert.True(t, r.Found, r.ID)
		}
	}
}

func TestParseCollectsAllProblems(t *testing.T) {
	_, err := Parse([]byte(`
kingdoms:
  - id: Bad-ID
    name: ""
    quiz:
      question: ""
      options: [only]
      correct: 3
  - id: lobby
    name: Lobby
    quiz:
      question: q
      options: [a, b]
      correct: 0
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "lowercase alphanumeric")
	assert.Contains(t, msg, "name must be set")
	assert.Contains(t, msg, "quiz question must be set")
	assert.Contains(t, msg, "out of range")
	assert.Contains(t, msg, "reserved")
}

func TestParseRejectsDuplicateCollectibles(t *testing.T) {
	_, err := Parse([]byte(`
kingdoms:
  - id: a
    name: A
    quiz: {question: q, options: [x, y], correct: 1}
    collectibles: [{id: c1}]
  - id: b
    name: B
    quiz: {question: q, options: [x, y], correct: 0}
    collectibles: [{id: c1}]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate collectible "c1"`)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte(`kingdoms: []`))
	assert.Error(t, err)
}
