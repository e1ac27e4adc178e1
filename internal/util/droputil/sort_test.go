package droputil

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/collectionlog/backend/internal/model"
)

func TestSortForDisplay(t *testing.T) {
	sources := []model.DropSource{
		NewDropSource("Zombie", model.DropSourceTypeMonster, "Rare"),
		NewDropSource("Goblin", model.DropSourceTypeMonster, "1/128"),
		NewDropSource("Abyssal demon", model.DropSourceTypeMonster, "Uncommon"),
		NewDropSource("Hill giant", model.DropSourceTypeMonster, "1/5"),
		NewDropSource("Cow", model.DropSourceTypeMonster, "1/128"),
	}

	sorted := SortForDisplay(sources)

	assert.Equal(t,
		[]string{"Hill giant", "Cow", "Goblin", "Abyssal demon", "Zombie"},
		lo.Map(sorted, func(s model.DropSource, _ int) string { return s.SourceName }))

	// input is left untouched
	assert.Equal(t, "Zombie", sources[0].SourceName)
}
