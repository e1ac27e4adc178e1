package droputil

import (
	"github.com/ahmetb/go-linq/v3"

	"github.com/collectionlog/backend/internal/model"
)

// SortForDisplay returns a copy of sources ordered for presentation: most likely
// first, unparseable rates last, ties broken by source name.
func SortForDisplay(sources []model.DropSource) []model.DropSource {
	sorted := make([]model.DropSource, 0, len(sources))

	linq.From(sources).
		SortT(displayLess).
		ToSlice(&sorted)

	return sorted
}

func displayLess(a, b model.DropSource) bool {
	if a.DropRateNumeric.Valid != b.DropRateNumeric.Valid {
		return a.DropRateNumeric.Valid
	}
	if a.DropRateNumeric.Valid && a.DropRateNumeric.Float64 != b.DropRateNumeric.Float64 {
		return a.DropRateNumeric.Float64 > b.DropRateNumeric.Float64
	}
	return a.SourceName < b.SourceName
}
