package rules

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Rank returns a new slice ordered by priority (high first), then by
// days-until-needed (soonest first), then by confidence (highest first).
// Full ties keep their input order. recs is not modified.
func Rank(recs []domain.Recommendation) []domain.Recommendation {
	out := slices.Clone(recs)
	slices.SortStableFunc(out, func(a, b domain.Recommendation) int {
		if c := cmp.Compare(b.Priority.Weight(), a.Priority.Weight()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.DaysUntilNeeded, b.DaysUntilNeeded); c != 0 {
			return c
		}
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	return out
}

// FilterByType keeps recommendations of type t. "all" and "" keep everything.
func FilterByType(recs []domain.Recommendation, t string) ([]domain.Recommendation, error) {
	if t == "" || t == domain.RecommendationTypeAll {
		return recs, nil
	}

	rt := domain.RecommendationType(t)
	if !rt.IsValid() {
		return nil, domain.NewValidationError("type", "unknown recommendation type")
	}

	out := make([]domain.Recommendation, 0, len(recs))
	for _, r := range recs {
		if r.Type == rt {
			out = append(out, r)
		}
	}
	return out, nil
}

// TotalSavings sums the savings of recs.
func TotalSavings(recs []domain.Recommendation) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recs {
		total = total.Add(r.Savings)
	}
	return total
}
