package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem inserts a pantry item for userID bought daysAgo days ago and
// returns it.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category string, daysAgo, duration int) domain.InventoryItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.InventoryItem{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              "item-" + uniqueSuffix(),
		Category:          category,
		Quantity:          1,
		Unit:              "kg",
		PurchasedAt:       now.AddDate(0, 0, -daysAgo),
		EstimatedDuration: duration,
		CurrentPrice:      decimal.NewFromInt(100),
		LastPrice:         decimal.NewFromInt(120),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pantry_items (id, user_id, name, category, quantity, unit, purchased_at,
		                           estimated_duration, current_price, last_price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		item.ID, item.UserID, item.Name, item.Category, item.Quantity, item.Unit, item.PurchasedAt,
		item.EstimatedDuration, item.CurrentPrice, item.LastPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// SeedEntry inserts an unchecked shopping entry for userID and returns it.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, price string, checked bool) domain.ShoppingEntry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.ShoppingEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "entry-" + uniqueSuffix(),
		Quantity:       1,
		Unit:           "kg",
		EstimatedPrice: decimal.RequireFromString(price),
		Priority:       domain.PriorityMedium,
		Category:       domain.DefaultCategory,
		IsChecked:      checked,
		Reason:         "Manually added",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO shopping_list_entries (id, user_id, name, quantity, unit, estimated_price, priority,
		                                    category, is_checked, reason, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.ID, entry.UserID, entry.Name, entry.Quantity, entry.Unit, entry.EstimatedPrice,
		string(entry.Priority), entry.Category, entry.IsChecked, entry.Reason, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return entry
}
