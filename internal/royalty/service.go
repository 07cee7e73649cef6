package royalty

import (
	"context"
	"fmt"
	"time"

	"github.com/coursecast/coursecast/internal/concurrency"
	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/event"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/metrics"
	"github.com/coursecast/coursecast/internal/repository"
)

// RoyaltyStore is the storage surface the distribution needs: royalty
// rows plus a transaction spanning them and the earnings caches
type RoyaltyStore interface {
	repository.Royalty
	repository.TxBeginner
}

// DistributionResult summarizes one monthly run
type DistributionResult struct {
	Month        string `json:"month"`
	PoolCents    int64  `json:"pool_cents"`
	PaidCents    int64  `json:"paid_cents"`
	TotalMinutes int64  `json:"total_minutes"`
	CreatorsPaid int    `json:"creators_paid"`
}

// Service distributes the monthly streaming royalty pool
type Service interface {
	// DistributeMonth computes and writes the royalty rows for one
	// month (YYYY-MM). Re-running replaces that month's rows, so the
	// operation is safe to repeat.
	DistributeMonth(ctx context.Context, month string) (*DistributionResult, error)

	// GetCreatorRoyalties returns a creator's royalty history
	GetCreatorRoyalties(ctx context.Context, creatorID string) ([]domain.RoyaltyPeriod, error)
}

type service struct {
	royalties  RoyaltyStore
	engagement repository.Engagement
	users      repository.User
	ledger     repository.Ledger
	bus        event.Bus
	priceCents int64
	locks      *concurrency.LockManager
	now        func() time.Time
}

// NewService creates a new royalty service. priceCents is the monthly
// streaming subscription price.
func NewService(royalties RoyaltyStore, engagement repository.Engagement, users repository.User, ledger repository.Ledger, bus event.Bus, priceCents int64) Service {
	return &service{
		royalties:  royalties,
		engagement: engagement,
		users:      users,
		ledger:     ledger,
		bus:        bus,
		priceCents: priceCents,
		locks:      concurrency.NewLockManager(),
		now:        time.Now,
	}
}

// PreviousMonth formats the calendar month before the given instant as
// YYYY-MM, the month a scheduled run should distribute.
func PreviousMonth(now time.Time) string {
	return now.UTC().AddDate(0, -1, -now.UTC().Day()+1).Format("2006-01")
}

func (s *service) DistributeMonth(ctx context.Context, month string) (*DistributionResult, error) {
	// Serialize concurrent runs for the same month so two distributions
	// never interleave their earnings refreshes
	lock := s.locks.GetLock(month)
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgDistributionStarted, "month", month)

	subscribers, err := s.users.CountActiveStreamingSubscribers(ctx, s.now())
	if err != nil {
		return nil, err
	}
	poolCents := subscribers * s.priceCents * RoyaltyPoolPercent / 100

	totals, err := s.engagement.StreamingWatchMinutesByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	var totalMinutes int64
	for _, t := range totals {
		totalMinutes += t.Minutes
	}

	result := &DistributionResult{Month: month, PoolCents: poolCents, TotalMinutes: totalMinutes}
	if totalMinutes == 0 || poolCents == 0 {
		log.Info(LogMsgNoWatchTime, "month", month, "poolCents", poolCents)
		return result, nil
	}

	tx, err := s.royalties.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	creators := make(map[string]bool)
	for _, t := range totals {
		share := domain.CreatorShareOfPool(poolCents, t.Minutes, totalMinutes)
		if err := tx.UpsertRoyaltyPeriod(ctx, &domain.RoyaltyPeriod{
			CreatorID:       t.CreatorID,
			VideoID:         t.VideoID,
			Month:           month,
			WatchMinutes:    t.Minutes,
			RoyaltyEarnings: share,
		}); err != nil {
			return nil, err
		}
		result.PaidCents += share
		creators[t.CreatorID] = true
	}

	// Refresh each creator's cached earnings total: lifetime sales fold
	// plus all royalty rows including the ones just written
	for creatorID := range creators {
		total, err := s.creatorTotal(ctx, creatorID, month, totals, poolCents, totalMinutes)
		if err != nil {
			return nil, err
		}
		if err := tx.UpdateTotalEarnings(ctx, creatorID, total); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit distribution: %w", err)
	}

	result.CreatorsPaid = len(creators)
	metrics.RoyaltiesDistributed.Add(float64(result.PaidCents))

	if err := s.bus.Publish(ctx, event.NewRoyaltyDistributedEvent(month, poolCents, result.PaidCents, result.CreatorsPaid)); err != nil {
		log.Warn(LogMsgFailedToPublishEvent, "error", err)
	}

	log.Info(LogMsgDistributionFinished,
		"month", month, "poolCents", poolCents, "paidCents", result.PaidCents,
		"creatorsPaid", result.CreatorsPaid, "totalMinutes", totalMinutes)
	return result, nil
}

// creatorTotal folds one creator's lifetime earnings: ledger sales,
// stored royalty rows from other months, and this run's share
func (s *service) creatorTotal(ctx context.Context, creatorID, month string, totals []repository.CreatorWatchMinutes, poolCents, totalMinutes int64) (int64, error) {
	total, err := s.ledger.SumCreatorEarnings(ctx, creatorID)
	if err != nil {
		return 0, err
	}

	stored, err := s.royalties.GetRoyaltiesByCreator(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	for _, r := range stored {
		if r.Month != month {
			total += r.RoyaltyEarnings
		}
	}

	for _, t := range totals {
		if t.CreatorID == creatorID {
			total += domain.CreatorShareOfPool(poolCents, t.Minutes, totalMinutes)
		}
	}
	return total, nil
}

func (s *service) GetCreatorRoyalties(ctx context.Context, creatorID string) ([]domain.RoyaltyPeriod, error) {
	return s.royalties.GetRoyaltiesByCreator(ctx, creatorID)
}
