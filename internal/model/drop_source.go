package model

import "gopkg.in/guregu/null.v3"

type DropSourceType string

const (
	DropSourceTypeMonster   DropSourceType = "monster"
	DropSourceTypeThieving  DropSourceType = "thieving"
	DropSourceTypeSkilling  DropSourceType = "skilling"
	DropSourceTypeContainer DropSourceType = "container"
	DropSourceTypeMinigame  DropSourceType = "minigame"
	DropSourceTypeClue      DropSourceType = "clue"
	DropSourceTypeShop      DropSourceType = "shop"
	DropSourceTypeOther     DropSourceType = "other"
)

// DropSource is one way of acquiring an item.
//
// DropRateNumeric is only ever derived from DropRateRaw. Use droputil.NewDropSource
// to construct values carrying a rate.
type DropSource struct {
	SourceName      string         `json:"sourceName"`
	Type            DropSourceType `json:"type"`
	DropRateRaw     null.String    `json:"dropRateRaw"`
	DropRateNumeric null.Float     `json:"dropRateNumeric"`
	Quantity        null.String    `json:"quantity"`
	Requirements    null.String    `json:"requirements"`
	Notes           null.String    `json:"notes"`
	WikiURL         null.String    `json:"wikiUrl"`
}
