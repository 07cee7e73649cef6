package repository

import (
	"context"

	"github.com/coursecast/coursecast/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	UpsertRoyaltyPeriod(ctx context.Context, period *domain.RoyaltyPeriod) error
	UpdateTotalEarnings(ctx context.Context, userID string, totalEarnings int64) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxBeginner starts a transaction spanning royalty and user tables
type TxBeginner interface {
	BeginTx(ctx context.Context) (Tx, error)
}
