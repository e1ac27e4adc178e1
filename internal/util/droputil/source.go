package droputil

import (
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/collectionlog/backend/internal/model"
)

// NewDropSource builds a DropSource whose numeric rate is derived from rawRate.
// Blank rawRate leaves both rate fields null.
func NewDropSource(sourceName string, sourceType model.DropSourceType, rawRate string) model.DropSource {
	rawRate = strings.TrimSpace(rawRate)
	return model.DropSource{
		SourceName:      strings.TrimSpace(sourceName),
		Type:            sourceType,
		DropRateRaw:     NonEmptyString(rawRate),
		DropRateNumeric: ParseRate(rawRate),
	}
}

// NonEmptyString returns a valid null.String only when s has non-space content.
func NonEmptyString(s string) null.String {
	s = strings.TrimSpace(s)
	return null.NewString(s, s != "")
}
