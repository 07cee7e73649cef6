package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// LedgerRepository implements the purchase ledger for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) repository.Ledger {
	return &LedgerRepository{db: db}
}

// SettlePurchase appends a ledger row and bumps the video's purchase
// counter in one transaction. The ON CONFLICT clause on payment_ref is
// the idempotency mechanism: a redelivered payment inserts zero rows,
// so the counter is left alone and (false, nil) is returned.
func (r *LedgerRepository) SettlePurchase(ctx context.Context, purchase *domain.Purchase) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	insertQuery := `
		INSERT INTO purchases (user_id, video_id, purchase_type, price_at_purchase,
			creator_earnings, platform_earnings, payment_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_ref) DO NOTHING
		RETURNING purchase_id, created_at
	`

	err = tx.QueryRow(ctx, insertQuery,
		purchase.UserID, purchase.VideoID, purchase.PurchaseType, purchase.PriceAtPurchase,
		purchase.CreatorEarnings, purchase.PlatformEarnings, purchase.PaymentRef,
	).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Duplicate payment_ref, nothing inserted
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertPurchase, err)
	}

	counterQuery := `UPDATE videos SET purchases = purchases + 1 WHERE video_id = $1`
	if _, err := tx.Exec(ctx, counterQuery, purchase.VideoID); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToBumpPurchaseCount, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return true, nil
}

// HasPurchase reports whether any ledger row exists for (user, video)
func (r *LedgerRepository) HasPurchase(ctx context.Context, userID string, videoID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM purchases WHERE user_id = $1 AND video_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, videoID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToGetPurchase, err)
	}
	return exists, nil
}

const purchaseColumns = `purchase_id, user_id, video_id, purchase_type,
		price_at_purchase, creator_earnings, platform_earnings, payment_ref, created_at`

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(
		&p.ID, &p.UserID, &p.VideoID, &p.PurchaseType,
		&p.PriceAtPurchase, &p.CreatorEarnings, &p.PlatformEarnings, &p.PaymentRef, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPurchaseByRef fetches the ledger row for one payment reference
func (r *LedgerRepository) GetPurchaseByRef(ctx context.Context, paymentRef string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE payment_ref = $1`

	purchase, err := scanPurchase(r.db.QueryRow(ctx, query, paymentRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPurchase, err)
	}
	return purchase, nil
}

// GetPurchasesByUser returns a user's ledger rows, newest first
func (r *LedgerRepository) GetPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPurchases, err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPurchases, err)
		}
		purchases = append(purchases, *p)
	}
	return purchases, rows.Err()
}

// SumCreatorEarnings folds the creator-earnings column over every ledger
// row belonging to one creator's videos
func (r *LedgerRepository) SumCreatorEarnings(ctx context.Context, creatorID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(p.creator_earnings), 0)
		FROM purchases p
		JOIN videos v ON v.video_id = p.video_id
		WHERE v.creator_id = $1
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, creatorID).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSumEarnings, err)
	}
	return total, nil
}

// GetEarningsByVideo folds ledger rows into per-video totals for one creator
func (r *LedgerRepository) GetEarningsByVideo(ctx context.Context, creatorID string) ([]repository.VideoEarnings, error) {
	query := `
		SELECT v.video_id, v.title, COUNT(p.purchase_id), COALESCE(SUM(p.creator_earnings), 0)
		FROM videos v
		LEFT JOIN purchases p ON p.video_id = v.video_id
		WHERE v.creator_id = $1
		GROUP BY v.video_id, v.title
		ORDER BY 4 DESC
	`

	rows, err := r.db.Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFoldEarnings, err)
	}
	defer rows.Close()

	var earnings []repository.VideoEarnings
	for rows.Next() {
		var e repository.VideoEarnings
		if err := rows.Scan(&e.VideoID, &e.Title, &e.Purchases, &e.CreatorEarnings); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFoldEarnings, err)
		}
		earnings = append(earnings, e)
	}
	return earnings, rows.Err()
}

// GetEarningsByMonth folds ledger rows into per-month totals for one creator
func (r *LedgerRepository) GetEarningsByMonth(ctx context.Context, creatorID string) ([]repository.MonthlyEarnings, error) {
	query := `
		SELECT to_char(p.created_at, 'YYYY-MM') AS month, COUNT(*), SUM(p.creator_earnings)
		FROM purchases p
		JOIN videos v ON v.video_id = p.video_id
		WHERE v.creator_id = $1
		GROUP BY month
		ORDER BY month DESC
	`

	rows, err := r.db.Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFoldEarnings, err)
	}
	defer rows.Close()

	var earnings []repository.MonthlyEarnings
	for rows.Next() {
		var e repository.MonthlyEarnings
		if err := rows.Scan(&e.Month, &e.Purchases, &e.CreatorEarnings); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFoldEarnings, err)
		}
		earnings = append(earnings, e)
	}
	return earnings, rows.Err()
}
