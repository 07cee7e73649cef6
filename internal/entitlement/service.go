package entitlement

import (
	"context"
	"errors"
	"time"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/metrics"
	"github.com/coursecast/coursecast/internal/repository"
)

// Service decides whether a user may watch a video. Decisions derive
// from the purchase ledger for paid tiers and from subscription state
// for the streaming tier; nothing here ever writes.
type Service interface {
	// HasAccess reports whether the user may watch the video right now
	HasAccess(ctx context.Context, userID string, videoID int) (bool, error)

	// AlreadyPurchased reports whether a ledger row exists for the pair,
	// regardless of tier
	AlreadyPurchased(ctx context.Context, userID string, videoID int) (bool, error)

	// InvalidateUser drops cached grants for one (user, video) pair
	InvalidateUser(userID string, videoID int)
}

type service struct {
	ledger  repository.Ledger
	catalog repository.Catalog
	users   repository.User
	cache   *accessCache
	now     func() time.Time
}

// NewService creates a new entitlement service
func NewService(ledger repository.Ledger, catalog repository.Catalog, users repository.User) Service {
	return &service{
		ledger:  ledger,
		catalog: catalog,
		users:   users,
		cache:   newAccessCache(DefaultCacheSize, DefaultCacheTTL),
		now:     time.Now,
	}
}

func (s *service) HasAccess(ctx context.Context, userID string, videoID int) (bool, error) {
	if s.cache.Get(userID, videoID) {
		metrics.AccessChecks.WithLabelValues(OutcomeGranted).Inc()
		return true, nil
	}

	granted, err := s.check(ctx, userID, videoID)
	if err != nil {
		return false, err
	}

	if granted {
		s.cache.SetGranted(userID, videoID)
		metrics.AccessChecks.WithLabelValues(OutcomeGranted).Inc()
	} else {
		metrics.AccessChecks.WithLabelValues(OutcomeDenied).Inc()
	}
	return granted, nil
}

func (s *service) check(ctx context.Context, userID string, videoID int) (bool, error) {
	log := logger.FromContext(ctx)

	video, err := s.catalog.GetVideoByID(ctx, videoID)
	if err != nil {
		return false, err
	}

	// Creators always see their own work, drafts included
	if video.CreatorID == userID {
		return true, nil
	}

	if !video.IsPublished {
		log.Debug(LogMsgAccessDenied, "userID", userID, "videoID", videoID, "reason", "unpublished")
		return false, nil
	}

	switch video.Tier {
	case domain.TierStreaming:
		user, err := s.users.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return false, nil
			}
			return false, err
		}
		return user.HasActiveStreamingSubscription(s.now()), nil

	case domain.TierBasic, domain.TierPremium:
		// Access is exactly "a ledger row exists". Premium rows arrive
		// through the external purchase endpoint; absent a row the
		// answer is no.
		return s.ledger.HasPurchase(ctx, userID, videoID)

	default:
		return false, domain.ErrTierUnknown
	}
}

func (s *service) AlreadyPurchased(ctx context.Context, userID string, videoID int) (bool, error) {
	return s.ledger.HasPurchase(ctx, userID, videoID)
}

func (s *service) InvalidateUser(userID string, videoID int) {
	s.cache.Invalidate(userID, videoID)
}
