package model

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

type ItemDropsResponse struct {
	ItemID    int          `json:"itemId"`
	ItemName  string       `json:"itemName"`
	Sources   []DropSource `json:"sources"`
	SourceURL null.String  `json:"sourceUrl"`

	// CachedAt is when the response was built. It drives HTTP cache headers only.
	CachedAt time.Time `json:"-"`
	// Fingerprint is a hash of the serialized response, served as the ETag.
	Fingerprint string `json:"-"`
}
