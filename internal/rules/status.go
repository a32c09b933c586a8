package rules

import (
	"math"
	"time"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Default status thresholds, as fractions of the estimated duration.
const (
	DefaultCriticalRatio = 0.15
	DefaultWarningRatio  = 0.40
)

// Classifier maps remaining supply to an ItemStatus.
type Classifier struct {
	CriticalRatio float64
	WarningRatio  float64
}

// DefaultClassifier returns a Classifier with the default thresholds.
func DefaultClassifier() Classifier {
	return Classifier{CriticalRatio: DefaultCriticalRatio, WarningRatio: DefaultWarningRatio}
}

// Classify returns critical below CriticalRatio, warning below WarningRatio
// and healthy otherwise. Negative daysLeft is always critical.
func (c Classifier) Classify(daysLeft, estimatedDuration int) (domain.ItemStatus, error) {
	if estimatedDuration <= 0 {
		return "", domain.NewValidationError("estimated_duration", "must be positive")
	}

	ratio := float64(daysLeft) / float64(estimatedDuration)
	switch {
	case ratio < c.CriticalRatio:
		return domain.ItemStatusCritical, nil
	case ratio < c.WarningRatio:
		return domain.ItemStatusWarning, nil
	default:
		return domain.ItemStatusHealthy, nil
	}
}

// Derive fills the read-time fields of item (DaysLeft, Status,
// RemainingPercent) as of now.
func (c Classifier) Derive(item *domain.InventoryItem, now time.Time) error {
	daysLeft := DaysLeft(item.PurchasedAt, item.EstimatedDuration, now)

	status, err := c.Classify(daysLeft, item.EstimatedDuration)
	if err != nil {
		return err
	}
	pct, err := RemainingRatio(daysLeft, item.EstimatedDuration)
	if err != nil {
		return err
	}

	item.DaysLeft = daysLeft
	item.Status = status
	item.RemainingPercent = pct
	return nil
}

// DaysLeft is the estimated duration minus the whole days elapsed since
// purchase. It goes negative once the supply is past its estimate. A purchase
// date in the future counts as zero elapsed days.
func DaysLeft(purchasedAt time.Time, estimatedDuration int, now time.Time) int {
	elapsed := math.Floor(now.Sub(purchasedAt).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}
	return estimatedDuration - int(elapsed)
}

// RemainingRatio returns the percentage of supply left, clamped to [0, 100].
func RemainingRatio(daysLeft, estimatedDuration int) (float64, error) {
	if estimatedDuration <= 0 {
		return 0, domain.NewValidationError("estimated_duration", "must be positive")
	}

	ratio := float64(daysLeft) / float64(estimatedDuration)
	ratio = math.Max(0, math.Min(1, ratio))
	return ratio * 100, nil
}
