// Package shopping implements the shopping list repository using PostgreSQL.
package shopping

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
	table  = "shopping_list_entries"
	entity = "shopping_entry"
)

var columns = []string{
	"id", "user_id", "name", "quantity", "unit", "estimated_price", "priority", "category",
	"is_checked", "reason", "days_until_needed", "source_item_id", "created_at", "updated_at",
}

// Repo provides shopping list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new shopping list repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Name            string          `db:"name"`
	Quantity        float64         `db:"quantity"`
	Unit            string          `db:"unit"`
	EstimatedPrice  decimal.Decimal `db:"estimated_price"`
	Priority        string          `db:"priority"`
	Category        string          `db:"category"`
	IsChecked       bool            `db:"is_checked"`
	Reason          string          `db:"reason"`
	DaysUntilNeeded *int            `db:"days_until_needed"`
	SourceItemID    *uuid.UUID      `db:"source_item_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r entryRow) toDomain() domain.ShoppingEntry {
	return domain.ShoppingEntry{
		ID:              r.ID,
		UserID:          r.UserID,
		Name:            r.Name,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		EstimatedPrice:  r.EstimatedPrice,
		Priority:        domain.Priority(r.Priority),
		Category:        r.Category,
		IsChecked:       r.IsChecked,
		Reason:          r.Reason,
		DaysUntilNeeded: r.DaysUntilNeeded,
		SourceItemID:    r.SourceItemID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a shopping entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.ShoppingEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	return r.getOne(ctx, entryID, query, args)
}

// List returns all shopping entries of a user, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table, err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list "+table)
	}

	entries := make([]domain.ShoppingEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new shopping entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "user_id", "name", "quantity", "unit", "estimated_price", "priority",
			"category", "is_checked", "reason", "days_until_needed", "source_item_id",
		).
		Values(
			e.ID, e.UserID, e.Name, e.Quantity, e.Unit, e.EstimatedPrice, string(e.Priority),
			e.Category, e.IsChecked, e.Reason, e.DaysUntilNeeded, e.SourceItemID,
		).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	return r.getOne(ctx, e.ID, query, args)
}

// Update overwrites every mutable column of e and returns the stored row.
func (r *Repo) Update(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error) {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"name":              e.Name,
			"quantity":          e.Quantity,
			"unit":              e.Unit,
			"estimated_price":   e.EstimatedPrice,
			"priority":          string(e.Priority),
			"category":          e.Category,
			"is_checked":        e.IsChecked,
			"reason":            e.Reason,
			"days_until_needed": e.DaysUntilNeeded,
			"updated_at":        sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": e.ID, "user_id": e.UserID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	return r.getOne(ctx, e.ID, query, args)
}

// Toggle flips is_checked in a single statement and returns the stored row.
func (r *Repo) Toggle(ctx context.Context, userID, entryID uuid.UUID) (*domain.ShoppingEntry, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_checked", sq.Expr("NOT is_checked")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build toggle %s: %w", entity, err)
	}

	return r.getOne(ctx, entryID, query, args)
}

const deleteEntrySQL = `DELETE FROM shopping_list_entries WHERE id = $1 AND user_id = $2`

// Delete removes a shopping entry. Returns domain.ErrNotFound if the entry
// does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteEntrySQL, entryID, userID)
	if err != nil {
		return postgres.MapError(err, entity, entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, entryID, domain.ErrNotFound)
	}

	return nil
}

const deleteCheckedSQL = `DELETE FROM shopping_list_entries WHERE user_id = $1 AND is_checked`

// DeleteChecked removes every checked entry of a user. Idempotent.
// Returns the number of deleted entries.
func (r *Repo) DeleteChecked(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteCheckedSQL, userID)
	if err != nil {
		return 0, postgres.MapListError(err, "delete checked "+table)
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.ShoppingEntry, error) {
	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	e := row.toDomain()
	return &e, nil
}
