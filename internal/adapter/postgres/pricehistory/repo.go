// Package pricehistory implements the monthly price series repository using
// PostgreSQL.
package pricehistory

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
	table  = "price_history"
	entity = "price_point"
)

var columns = []string{"id", "item_id", "user_id", "period", "price", "recorded_at"}

// Repo provides price history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new price history repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type pointRow struct {
	ID         uuid.UUID       `db:"id"`
	ItemID     uuid.UUID       `db:"item_id"`
	UserID     uuid.UUID       `db:"user_id"`
	Period     string          `db:"period"`
	Price      decimal.Decimal `db:"price"`
	RecordedAt time.Time       `db:"recorded_at"`
}

func (r pointRow) toDomain() domain.PricePoint {
	return domain.PricePoint{
		ID:         r.ID,
		ItemID:     r.ItemID,
		UserID:     r.UserID,
		Period:     r.Period,
		Price:      r.Price,
		RecordedAt: r.RecordedAt,
	}
}

// Upsert records the price of an item for a period. A second price in the same
// period replaces the first.
func (r *Repo) Upsert(ctx context.Context, p *domain.PricePoint) (*domain.PricePoint, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "item_id", "user_id", "period", "price", "recorded_at").
		Values(p.ID, p.ItemID, p.UserID, p.Period, p.Price, p.RecordedAt).
		Suffix("ON CONFLICT (item_id, period) DO UPDATE SET price = EXCLUDED.price, recorded_at = EXCLUDED.recorded_at " +
			postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert %s: %w", entity, err)
	}

	var row pointRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, p.ItemID)
	}

	point := row.toDomain()
	return &point, nil
}

// ListByItem returns the series of one item, oldest period first.
func (r *Repo) ListByItem(ctx context.Context, userID, itemID uuid.UUID) ([]domain.PricePoint, error) {
	return r.list(ctx, sq.Eq{"user_id": userID, "item_id": itemID})
}

// ListByItemIDs returns the series of several items in one query, grouped by
// item id, each oldest period first.
func (r *Repo) ListByItemIDs(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID][]domain.PricePoint, error) {
	out := make(map[uuid.UUID][]domain.PricePoint, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}

	points, err := r.list(ctx, sq.Eq{"user_id": userID, "item_id": itemIDs})
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		out[p.ItemID] = append(out[p.ItemID], p)
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.PricePoint, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("item_id", "period ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table, err)
	}

	var rows []pointRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list "+table)
	}

	points := make([]domain.PricePoint, len(rows))
	for i, row := range rows {
		points[i] = row.toDomain()
	}
	return points, nil
}
