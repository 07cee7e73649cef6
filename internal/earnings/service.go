package earnings

import (
	"context"

	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/repository"
)

// CreatorStats is the earnings dashboard for one creator. Every figure
// is folded from immutable ledger and royalty rows at call time.
type CreatorStats struct {
	CreatorID        string                       `json:"creator_id"`
	TotalEarnings    int64                        `json:"total_earnings"`
	RoyaltyEarnings  int64                        `json:"royalty_earnings"`
	ByVideo          []repository.VideoEarnings   `json:"by_video"`
	ByMonth          []repository.MonthlyEarnings `json:"by_month"`
}

// Service defines the interface for earnings aggregation
type Service interface {
	// TotalEarnings folds a creator's lifetime sale earnings from the ledger
	TotalEarnings(ctx context.Context, creatorID string) (int64, error)

	// GetCreatorStats assembles the full earnings breakdown
	GetCreatorStats(ctx context.Context, creatorID string) (*CreatorStats, error)

	// ReconcileCounters refreshes the denormalized caches (video purchase
	// counters, user earnings totals) from the ledger. Run periodically;
	// any drift it finds is logged.
	ReconcileCounters(ctx context.Context) error
}

type service struct {
	ledger    repository.Ledger
	catalog   repository.Catalog
	users     repository.User
	royalties repository.Royalty
}

// NewService creates a new earnings service
func NewService(ledger repository.Ledger, catalog repository.Catalog, users repository.User, royalties repository.Royalty) Service {
	return &service{
		ledger:    ledger,
		catalog:   catalog,
		users:     users,
		royalties: royalties,
	}
}

func (s *service) TotalEarnings(ctx context.Context, creatorID string) (int64, error) {
	return s.ledger.SumCreatorEarnings(ctx, creatorID)
}

func (s *service) GetCreatorStats(ctx context.Context, creatorID string) (*CreatorStats, error) {
	if _, err := s.users.GetUserByID(ctx, creatorID); err != nil {
		return nil, err
	}

	total, err := s.ledger.SumCreatorEarnings(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	byVideo, err := s.ledger.GetEarningsByVideo(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	byMonth, err := s.ledger.GetEarningsByMonth(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	var royaltyTotal int64
	royalties, err := s.royalties.GetRoyaltiesByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	for _, r := range royalties {
		royaltyTotal += r.RoyaltyEarnings
	}

	return &CreatorStats{
		CreatorID:       creatorID,
		TotalEarnings:   total,
		RoyaltyEarnings: royaltyTotal,
		ByVideo:         byVideo,
		ByMonth:         byMonth,
	}, nil
}

func (s *service) ReconcileCounters(ctx context.Context) error {
	log := logger.FromContext(ctx)

	changed, err := s.catalog.RecountPurchases(ctx)
	if err != nil {
		return err
	}
	if changed > 0 {
		log.Warn(LogMsgCounterDrift, "videosCorrected", changed)
	} else {
		log.Debug(LogMsgCountersConsistent)
	}
	return nil
}
