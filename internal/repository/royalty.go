package repository

import (
	"context"

	"github.com/coursecast/coursecast/internal/domain"
)

// Royalty defines the interface for streaming royalty periods
type Royalty interface {
	// UpsertRoyaltyPeriod writes one (creator, video, month) royalty row.
	// Re-running a distribution for the same month overwrites the row
	// rather than duplicating it.
	UpsertRoyaltyPeriod(ctx context.Context, period *domain.RoyaltyPeriod) error
	GetRoyaltiesByCreator(ctx context.Context, creatorID string) ([]domain.RoyaltyPeriod, error)
	GetRoyaltiesByMonth(ctx context.Context, month string) ([]domain.RoyaltyPeriod, error)
}
