package pantry

import "github.com/heartmarshall/pantry-backend/internal/domain"

// ListItemsResult is the pantry view: filtered items plus the categories and
// summary of the whole pantry.
type ListItemsResult struct {
	Items      []domain.InventoryItem
	Categories []string
	Summary    domain.PantrySummary
}

// UpdatePriceResult holds the repriced item and the change against its
// previous price. Delta is nil when the previous price was zero.
type UpdatePriceResult struct {
	Item  *domain.InventoryItem
	Delta *domain.PriceDelta
}

// ConsumeResult holds the item after consumption. Removed is set when the
// item was used up and deleted.
type ConsumeResult struct {
	Item    *domain.InventoryItem
	Removed bool
}
