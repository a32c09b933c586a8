package domain

// Snapshot is everything the client shows at once: the pantry, the shopping
// list and the pending recommendations of one user, read at the same moment.
type Snapshot struct {
	Items           []InventoryItem
	Entries         []ShoppingEntry
	Recommendations []Recommendation
}
