package model

import "gopkg.in/guregu/null.v3"

// OverrideFile is a curated drop table of a single source, usually a monster.
type OverrideFile struct {
	Name              string            `json:"name"`
	DropTableSections []OverrideSection `json:"dropTableSections"`
}

type OverrideSection struct {
	Header string          `json:"header"`
	Items  []OverrideEntry `json:"items"`
}

type OverrideEntry struct {
	ItemID null.Int    `json:"itemId"`
	Name   null.String `json:"name"`
	Rarity string      `json:"rarity"`
}

// Matches reports whether the entry describes the item with the given id or name.
// The name comparison is exact.
func (e OverrideEntry) Matches(itemName string, itemID int) bool {
	if e.ItemID.Valid && e.ItemID.Int64 == int64(itemID) {
		return true
	}
	return e.Name.Valid && e.Name.String == itemName
}
