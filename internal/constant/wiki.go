package constant

const (
	// WikiDropTableClass marks a table listing monsters and other sources dropping the item.
	WikiDropTableClass = "item-drops"

	// WikiShopTableClass marks a table listing shops stocking the item.
	WikiShopTableClass = "store-locations-list"

	// WikiNoDropSentinel is the source cell content of placeholder rows.
	WikiNoDropSentinel = "Nothing"

	WikiPagePathPrefix = "/w/"

	// UnmappedItemNameFormat names items missing from the item mapping.
	UnmappedItemNameFormat = "Item_%d"
)
