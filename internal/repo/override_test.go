package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/collectionlog/backend/internal/model"
)

const hillGiantOverride = `{
  "name": "Hill giant",
  "dropTableSections": [
    {"header": "100%", "items": [{"itemId": 532, "name": "Big bones", "rarity": "Always"}]},
    {"header": "Other", "items": [
      {"itemId": 1234, "name": "Dragon bones", "rarity": "1/128"},
      {"name": "Giant key", "rarity": "1/128"}
    ]}
  ]
}`

const greenDragonOverride = `{
  "name": "Green dragon",
  "dropTableSections": [
    {"header": "Bones", "items": [{"name": "Dragon bones", "rarity": "Always"}]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestOverride(t *testing.T, dir string) *Override {
	t.Helper()
	conf := testConfig("https://oldschool.runescape.wiki", "", dir)
	wiki, err := NewWikiPage(conf, testClient())
	require.NoError(t, err)
	return NewOverride(conf, wiki)
}

func TestOverrideGetDropSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_hill_giant.json", hillGiantOverride)
	writeFile(t, dir, "a_green_dragon.json", greenDragonOverride)
	writeFile(t, dir, "README.md", "not json")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	r := newTestOverride(t, dir)
	got := r.GetDropSources("Dragon bones", 1234)

	require.Len(t, got, 2)

	// files are visited in lexical order
	assert.Equal(t, model.DropSource{
		SourceName:      "Green dragon",
		Type:            model.DropSourceTypeMonster,
		DropRateRaw:     null.StringFrom("Always"),
		DropRateNumeric: null.Float{},
		Notes:           null.StringFrom("Bones"),
		WikiURL:         null.StringFrom("https://oldschool.runescape.wiki/w/Green_dragon"),
	}, got[0])

	assert.Equal(t, "Hill giant", got[1].SourceName)
	assert.Equal(t, null.StringFrom("1/128"), got[1].DropRateRaw)
	assert.InDelta(t, 1.0/128, got[1].DropRateNumeric.Float64, 1e-12)
	assert.Equal(t, null.StringFrom("Other"), got[1].Notes)
	assert.Equal(t, null.StringFrom("https://oldschool.runescape.wiki/w/Hill_giant"), got[1].WikiURL)
}

func TestOverrideMatchesByIDOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hill_giant.json", hillGiantOverride)

	r := newTestOverride(t, dir)
	got := r.GetDropSources("Some renamed bones", 1234)
	require.Len(t, got, 1)
	assert.Equal(t, "Hill giant", got[0].SourceName)

	assert.Empty(t, r.GetDropSources("dragon bones", 1))
}

func TestOverrideSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_broken.json", `{"name": "Broken", "dropTableSections": [`)
	writeFile(t, dir, "b_nameless.json", `{"name": " ", "dropTableSections": [{"header": "x", "items": [{"itemId": 1234, "rarity": "1/2"}]}]}`)
	writeFile(t, dir, "c_hill_giant.json", hillGiantOverride)

	r := newTestOverride(t, dir)
	got := r.GetDropSources("Dragon bones", 1234)
	require.Len(t, got, 1)
	assert.Equal(t, "Hill giant", got[0].SourceName)
}

func TestOverrideMissingDirectory(t *testing.T) {
	r := newTestOverride(t, filepath.Join(t.TempDir(), "does-not-exist"))
	got := r.GetDropSources("Dragon bones", 1234)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
