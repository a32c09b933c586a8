package rules

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Categorized is any record that belongs to a category.
type Categorized interface {
	ItemCategory() string
}

// FilterByCategory keeps items whose category equals category exactly.
// "all" and "" return items unchanged.
func FilterByCategory[T Categorized](items []T, category string) []T {
	if category == "" || category == domain.CategoryAll {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.ItemCategory() == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns "all" followed by the distinct categories of items in
// first-seen order.
func Categories[T Categorized](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{domain.CategoryAll}
	for _, it := range items {
		c := it.ItemCategory()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// SummarizePantry counts items by their derived status and totals their
// current value. Items must already carry a derived Status.
func SummarizePantry(items []domain.InventoryItem) domain.PantrySummary {
	s := domain.PantrySummary{
		Total:            len(items),
		TotalValue:       decimal.Zero,
		PotentialSavings: decimal.Zero,
	}
	for _, it := range items {
		switch it.Status {
		case domain.ItemStatusHealthy:
			s.Healthy++
		case domain.ItemStatusWarning:
			s.Warning++
		case domain.ItemStatusCritical:
			s.Critical++
		}
		s.TotalValue = s.TotalValue.Add(it.CurrentPrice)
		s.PotentialSavings = s.PotentialSavings.Add(ItemSavings(it))
	}
	return s
}

// SummarizeShopping counts checked and remaining entries. EstimatedCost sums
// the estimated price of unchecked entries only.
func SummarizeShopping(entries []domain.ShoppingEntry) domain.ShoppingSummary {
	s := domain.ShoppingSummary{
		Total:         len(entries),
		EstimatedCost: decimal.Zero,
	}
	for _, e := range entries {
		if e.IsChecked {
			s.Checked++
			continue
		}
		s.EstimatedCost = s.EstimatedCost.Add(e.EstimatedPrice)
	}
	s.Remaining = s.Total - s.Checked
	return s
}

// FilterCompleted drops checked entries unless showCompleted is set.
func FilterCompleted(entries []domain.ShoppingEntry, showCompleted bool) []domain.ShoppingEntry {
	if showCompleted {
		return entries
	}
	out := make([]domain.ShoppingEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsChecked {
			out = append(out, e)
		}
	}
	return out
}
