package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// RoyaltyRepository implements streaming royalty storage for PostgreSQL
type RoyaltyRepository struct {
	db *pgxpool.Pool
}

// NewRoyaltyRepository creates a new RoyaltyRepository
func NewRoyaltyRepository(db *pgxpool.Pool) *RoyaltyRepository {
	return &RoyaltyRepository{db: db}
}

const upsertRoyaltyQuery = `
	INSERT INTO streaming_royalties (creator_id, video_id, month, watch_minutes, royalty_earnings)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (creator_id, video_id, month) DO UPDATE
	SET watch_minutes = EXCLUDED.watch_minutes,
	    royalty_earnings = EXCLUDED.royalty_earnings
`

// UpsertRoyaltyPeriod writes one (creator, video, month) royalty row,
// replacing any earlier run for the same month
func (r *RoyaltyRepository) UpsertRoyaltyPeriod(ctx context.Context, period *domain.RoyaltyPeriod) error {
	_, err := r.db.Exec(ctx, upsertRoyaltyQuery,
		period.CreatorID, period.VideoID, period.Month, period.WatchMinutes, period.RoyaltyEarnings)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertRoyalty, err)
	}
	return nil
}

// GetRoyaltiesByCreator returns a creator's royalty rows, newest month first
func (r *RoyaltyRepository) GetRoyaltiesByCreator(ctx context.Context, creatorID string) ([]domain.RoyaltyPeriod, error) {
	query := `
		SELECT royalty_id, creator_id, video_id, month, watch_minutes, royalty_earnings, created_at
		FROM streaming_royalties
		WHERE creator_id = $1
		ORDER BY month DESC, video_id
	`
	return r.queryRoyalties(ctx, query, creatorID)
}

// GetRoyaltiesByMonth returns every royalty row for one month
func (r *RoyaltyRepository) GetRoyaltiesByMonth(ctx context.Context, month string) ([]domain.RoyaltyPeriod, error) {
	query := `
		SELECT royalty_id, creator_id, video_id, month, watch_minutes, royalty_earnings, created_at
		FROM streaming_royalties
		WHERE month = $1
		ORDER BY creator_id, video_id
	`
	return r.queryRoyalties(ctx, query, month)
}

func (r *RoyaltyRepository) queryRoyalties(ctx context.Context, query string, args ...interface{}) ([]domain.RoyaltyPeriod, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRoyalties, err)
	}
	defer rows.Close()

	var periods []domain.RoyaltyPeriod
	for rows.Next() {
		var p domain.RoyaltyPeriod
		if err := rows.Scan(&p.ID, &p.CreatorID, &p.VideoID, &p.Month, &p.WatchMinutes, &p.RoyaltyEarnings, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRoyalties, err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// BeginTx starts a transaction spanning royalty and user tables so one
// month's distribution commits atomically
func (r *RoyaltyRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &royaltyTx{tx: tx}, nil
}

type royaltyTx struct {
	tx pgx.Tx
}

func (t *royaltyTx) UpsertRoyaltyPeriod(ctx context.Context, period *domain.RoyaltyPeriod) error {
	_, err := t.tx.Exec(ctx, upsertRoyaltyQuery,
		period.CreatorID, period.VideoID, period.Month, period.WatchMinutes, period.RoyaltyEarnings)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertRoyalty, err)
	}
	return nil
}

func (t *royaltyTx) UpdateTotalEarnings(ctx context.Context, userID string, totalEarnings int64) error {
	result, err := t.tx.Exec(ctx,
		`UPDATE users SET total_earnings = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, totalEarnings)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEarnings, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *royaltyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *royaltyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
