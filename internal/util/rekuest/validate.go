package rekuest

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/pkg/apierr"
	"github.com/collectionlog/backend/internal/util"
)

var Validate = util.NewValidator()

// ValidItemID parses a raw item id query value. Blank input yields
// apierr.ErrMissingItemID, anything that is not a non-negative base-10 integer
// yields apierr.ErrInvalidItemID.
func ValidItemID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apierr.ErrMissingItemID
	}

	if err := Validate.Var(raw, "itemid"); err != nil {
		return 0, apierr.ErrInvalidItemID
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Debug().Err(err).Str("itemId", raw).Msg("item id out of range")
		return 0, apierr.ErrInvalidItemID
	}

	return id, nil
}
