package droputil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"github.com/collectionlog/backend/internal/model"
)

func TestMergeOverridePrecedence(t *testing.T) {
	override := NewDropSource("Hill giant", model.DropSourceTypeMonster, "1/128")
	override.Notes = null.StringFrom("Tertiary")

	scraped := NewDropSource("Hill giant", model.DropSourceTypeMonster, "1/128")
	scraped.Notes = null.StringFrom("Rare drop")
	scraped.Quantity = null.StringFrom("1")

	merged := Merge([]model.DropSource{override}, []model.DropSource{scraped})

	if assert.Len(t, merged, 1, spew.Sdump(merged)) {
		assert.Equal(t, override, merged[0])
	}
}

func TestMergeKeepsFirstSeenOrder(t *testing.T) {
	overrides := []model.DropSource{
		NewDropSource("Obor", model.DropSourceTypeMonster, "1/1"),
		NewDropSource("Hill giant", model.DropSourceTypeMonster, "1/128"),
	}
	scraped := []model.DropSource{
		NewDropSource("Cyclops", model.DropSourceTypeMonster, "1/50"),
		NewDropSource("Hill giant", model.DropSourceTypeMonster, "1/128"),
		NewDropSource("Hill giant", model.DropSourceTypeMonster, "1/129"),
		NewDropSource("Hill giant", model.DropSourceTypeClue, "1/128"),
		NewDropSource("Shop", model.DropSourceTypeShop, ""),
		NewDropSource("Shop", model.DropSourceTypeShop, ""),
	}

	merged := Merge(overrides, scraped)

	names := lo.Map(merged, func(s model.DropSource, _ int) string {
		return s.SourceName + "|" + string(s.Type) + "|" + s.DropRateRaw.ValueOrZero()
	})
	assert.Equal(t, []string{
		"Obor|monster|1/1",
		"Hill giant|monster|1/128",
		"Cyclops|monster|1/50",
		"Hill giant|monster|1/129",
		"Hill giant|clue|1/128",
		"Shop|shop|",
	}, names)
}

func TestMergeIdempotent(t *testing.T) {
	a := []model.DropSource{
		NewDropSource("Goblin", model.DropSourceTypeMonster, "1/5"),
		NewDropSource("Goblin", model.DropSourceTypeMonster, "1/5"),
	}
	b := []model.DropSource{
		NewDropSource("Imp", model.DropSourceTypeMonster, "Common"),
		NewDropSource("Goblin", model.DropSourceTypeMonster, "1/5"),
	}

	once := Merge(a, b)
	twice := Merge(once, nil)

	assert.Equal(t, lo.Map(once, func(s model.DropSource, _ int) string { return DedupKey(s) }),
		lo.Map(twice, func(s model.DropSource, _ int) string { return DedupKey(s) }))
}

func TestMergeEmpty(t *testing.T) {
	merged := Merge(nil, nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
