package subscription

import (
	"context"
	"time"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/event"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/repository"
)

// Service manages the streaming subscription lifecycle
type Service interface {
	// Subscribe activates the streaming subscription with a one-month
	// trial. Calling it while a subscription is active is a no-op.
	Subscribe(ctx context.Context, userID string) (*domain.User, error)

	// Cancel clears the subscriber flag. Cached entitlement grants may
	// survive until their TTL expires.
	Cancel(ctx context.Context, userID string) error
}

type service struct {
	users repository.User
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new subscription service
func NewService(users repository.User, bus event.Bus) Service {
	return &service{users: users, bus: bus, now: time.Now}
}

func (s *service) Subscribe(ctx context.Context, userID string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if user.HasActiveStreamingSubscription(now) {
		log.Info(LogMsgAlreadySubscribed, "userID", userID)
		return user, nil
	}

	trialEnd := now.AddDate(0, TrialMonths, 0)
	if err := s.users.ActivateStreaming(ctx, userID, &trialEnd, nil); err != nil {
		return nil, err
	}

	if err := s.bus.Publish(ctx, event.NewSubscriptionActivatedEvent(userID, trialEnd)); err != nil {
		log.Warn(LogMsgFailedToPublishEvent, "error", err)
	}

	log.Info(LogMsgSubscriptionActivated, "userID", userID, "trialEndsAt", trialEnd)
	return s.users.GetUserByID(ctx, userID)
}

func (s *service) Cancel(ctx context.Context, userID string) error {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.DeactivateStreaming(ctx, userID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSubscriptionCanceled, "userID", userID)
	return nil
}
