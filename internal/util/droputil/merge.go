package droputil

import (
	"github.com/ahmetb/go-linq/v3"

	"github.com/collectionlog/backend/internal/model"
)

// DedupKey identifies duplicate drop sources. Quantity and notes are not part of the key.
func DedupKey(s model.DropSource) string {
	return s.SourceName + "\x00" + string(s.Type) + "\x00" + s.DropRateRaw.ValueOrZero()
}

// Merge concatenates overrides and scraped sources, overrides first, and drops later
// duplicates by DedupKey. The first-seen order is kept.
func Merge(overrides, scraped []model.DropSource) []model.DropSource {
	merged := make([]model.DropSource, 0, len(overrides)+len(scraped))

	linq.From(overrides).
		Concat(linq.From(scraped)).
		DistinctByT(DedupKey).
		ToSlice(&merged)

	return merged
}
