package recommendation

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// ListResult is the ranked, filtered recommendation list.
type ListResult struct {
	Recommendations []domain.Recommendation
	// TotalSavings sums Savings over Recommendations.
	TotalSavings decimal.Decimal
	Types        []string
}
