package repository

import (
	"context"

	"github.com/coursecast/coursecast/internal/domain"
)

// VideoEarnings is a per-video earnings aggregate folded from the ledger
type VideoEarnings struct {
	VideoID         int    `json:"video_id"`
	Title           string `json:"title"`
	Purchases       int64  `json:"purchases"`
	CreatorEarnings int64  `json:"creator_earnings"`
}

// MonthlyEarnings is a per-month earnings aggregate folded from the ledger
type MonthlyEarnings struct {
	Month           string `json:"month"` // YYYY-MM
	Purchases       int64  `json:"purchases"`
	CreatorEarnings int64  `json:"creator_earnings"`
}

// Ledger defines the interface for the append-only purchase ledger.
// Rows are inserted exactly once per payment reference and never
// mutated; every aggregate is a fold over these rows.
type Ledger interface {
	// SettlePurchase inserts a ledger row and increments the video's
	// purchase counter in the same transaction. The insert relies on the
	// unique constraint on payment_ref: a duplicate reference inserts
	// nothing, increments nothing, and returns false with a nil error.
	SettlePurchase(ctx context.Context, purchase *domain.Purchase) (bool, error)

	HasPurchase(ctx context.Context, userID string, videoID int) (bool, error)
	GetPurchaseByRef(ctx context.Context, paymentRef string) (*domain.Purchase, error)
	GetPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error)

	// Earnings folds, filtered to videos owned by the creator
	SumCreatorEarnings(ctx context.Context, creatorID string) (int64, error)
	GetEarningsByVideo(ctx context.Context, creatorID string) ([]VideoEarnings, error)
	GetEarningsByMonth(ctx context.Context, creatorID string) ([]MonthlyEarnings, error)
}
