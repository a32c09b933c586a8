// Package recommendation implements the recommendation repository using PostgreSQL.
package recommendation

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
	table  = "recommendations"
	entity = "recommendation"
)

var columns = []string{
	"id", "user_id", "item_name", "type", "reason", "priority", "savings",
	"days_until_needed", "current_price", "previous_price", "confidence", "created_at",
}

// Repo provides recommendation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new recommendation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type recRow struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	ItemName        string          `db:"item_name"`
	Type            string          `db:"type"`
	Reason          string          `db:"reason"`
	Priority        string          `db:"priority"`
	Savings         decimal.Decimal `db:"savings"`
	DaysUntilNeeded int             `db:"days_until_needed"`
	CurrentPrice    decimal.Decimal `db:"current_price"`
	PreviousPrice   decimal.Decimal `db:"previous_price"`
	Confidence      int             `db:"confidence"`
	CreatedAt       time.Time       `db:"created_at"`
}

func (r recRow) toDomain() domain.Recommendation {
	return domain.Recommendation{
		ID:              r.ID,
		UserID:          r.UserID,
		ItemName:        r.ItemName,
		Type:            domain.RecommendationType(r.Type),
		Reason:          r.Reason,
		Priority:        domain.Priority(r.Priority),
		Savings:         r.Savings,
		DaysUntilNeeded: r.DaysUntilNeeded,
		CurrentPrice:    r.CurrentPrice,
		PreviousPrice:   r.PreviousPrice,
		Confidence:      r.Confidence,
		CreatedAt:       r.CreatedAt,
	}
}

// GetByID returns a recommendation by primary key.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, recID uuid.UUID) (*domain.Recommendation, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": recID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	var row recRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, recID)
	}

	rec := row.toDomain()
	return &rec, nil
}

// List returns all recommendations of a user, newest first. Ranking is the
// caller's job.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", table, err)
	}

	var rows []recRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list "+table)
	}

	recs := make([]domain.Recommendation, len(rows))
	for i, row := range rows {
		recs[i] = row.toDomain()
	}
	return recs, nil
}

// Create inserts a recommendation and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "user_id", "item_name", "type", "reason", "priority", "savings",
			"days_until_needed", "current_price", "previous_price", "confidence",
		).
		Values(
			rec.ID, rec.UserID, rec.ItemName, string(rec.Type), rec.Reason, string(rec.Priority), rec.Savings,
			rec.DaysUntilNeeded, rec.CurrentPrice, rec.PreviousPrice, rec.Confidence,
		).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var row recRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, rec.ID)
	}

	created := row.toDomain()
	return &created, nil
}

const deleteRecommendationSQL = `DELETE FROM recommendations WHERE id = $1 AND user_id = $2`

// Delete removes a recommendation. Returns domain.ErrNotFound if it does not
// exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, recID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteRecommendationSQL, recID, userID)
	if err != nil {
		return postgres.MapError(err, entity, recID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, recID, domain.ErrNotFound)
	}

	return nil
}
