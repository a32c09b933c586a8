// Package pantryitem implements the pantry item repository using PostgreSQL.
package pantryitem

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantry-backend/internal/domain"
)

const (
	table  = "pantry_items"
	entity = "pantry_item"
)

var columns = []string{
	"id", "user_id", "name", "category", "quantity", "unit", "purchased_at",
	"estimated_duration", "current_price", "last_price", "created_at", "updated_at",
}

// Repo provides pantry item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new pantry item repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type itemRow struct {
	ID                uuid.UUID       `db:"id"`
	UserID            uuid.UUID       `db:"user_id"`
	Name              string          `db:"name"`
	Category          string          `db:"category"`
	Quantity          float64         `db:"quantity"`
	Unit              string          `db:"unit"`
	PurchasedAt       time.Time       `db:"purchased_at"`
	EstimatedDuration int             `db:"estimated_duration"`
	CurrentPrice      decimal.Decimal `db:"current_price"`
	LastPrice         decimal.Decimal `db:"last_price"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (r itemRow) toDomain() domain.InventoryItem {
	return domain.InventoryItem{
		ID:                r.ID,
		UserID:            r.UserID,
		Name:              r.Name,
		Category:          r.Category,
		Quantity:          r.Quantity,
		Unit:              r.Unit,
		PurchasedAt:       r.PurchasedAt,
		EstimatedDuration: r.EstimatedDuration,
		CurrentPrice:      r.CurrentPrice,
		LastPrice:         r.LastPrice,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a pantry item by primary key.
// Returns domain.ErrNotFound if the item does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InventoryItem, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, itemID)
	}

	item := row.toDomain()
	return &item, nil
}

// List returns all pantry items of a user, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table, err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list "+table)
	}

	items := make([]domain.InventoryItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

const countItemsSQL = `SELECT count(*) FROM pantry_items WHERE user_id = $1`

// Count returns the number of pantry items of a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countItemsSQL, userID).Scan(&n); err != nil {
		return 0, postgres.MapListError(err, "count "+table)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new pantry item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "user_id", "name", "category", "quantity", "unit",
			"purchased_at", "estimated_duration", "current_price", "last_price",
		).
		Values(
			item.ID, item.UserID, item.Name, item.Category, item.Quantity, item.Unit,
			item.PurchasedAt, item.EstimatedDuration, item.CurrentPrice, item.LastPrice,
		).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, item.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update overwrites every mutable column of item and returns the stored row.
// Returns domain.ErrNotFound if the item does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":               item.Name,
			"category":           item.Category,
			"quantity":           item.Quantity,
			"unit":               item.Unit,
			"purchased_at":       item.PurchasedAt,
			"estimated_duration": item.EstimatedDuration,
			"current_price":      item.CurrentPrice,
			"last_price":         item.LastPrice,
			"updated_at":         sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, item.ID)
	}

	updated := row.toDomain()
	return &updated, nil
}

const deleteItemSQL = `DELETE FROM pantry_items WHERE id = $1 AND user_id = $2`

// Delete removes a pantry item. Returns domain.ErrNotFound if the item
// does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteItemSQL, itemID, userID)
	if err != nil {
		return postgres.MapError(err, entity, itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, itemID, domain.ErrNotFound)
	}

	return nil
}
