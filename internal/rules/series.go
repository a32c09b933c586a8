package rules

import (
	"errors"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Window returns the newest r.Points() points of series (ordered oldest to
// newest). Shorter series are returned whole.
func Window(series []domain.PricePoint, r domain.TrendRange) ([]domain.PricePoint, error) {
	if !r.IsValid() {
		return nil, domain.NewValidationError("range", "must be one of 3m, 6m, 1y")
	}
	n := r.Points()
	if len(series) <= n {
		return series, nil
	}
	return series[len(series)-n:], nil
}

// SeriesDelta compares the first and last point of series. It returns nil
// when the change is undefined because the first price is zero.
func SeriesDelta(series []domain.PricePoint) (*domain.PriceDelta, error) {
	if len(series) == 0 {
		return nil, domain.NewValidationError("series", "must not be empty")
	}

	delta, err := Evaluate(series[len(series)-1].Price, series[0].Price)
	if errors.Is(err, domain.ErrDivisionByZero) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &delta, nil
}
