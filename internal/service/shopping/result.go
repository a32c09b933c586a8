package shopping

import "github.com/heartmarshall/pantry-backend/internal/domain"

// ListEntriesResult is the visible part of the shopping list plus facts about
// the whole list.
type ListEntriesResult struct {
	Entries    []domain.ShoppingEntry
	Categories []string
	Summary    domain.ShoppingSummary
}
