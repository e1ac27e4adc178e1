package model

// ItemMappingEntry is one element of the item mapping service response.
// Any other fields the service returns are ignored.
type ItemMappingEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
