package repository

import (
	"context"
	"time"

	"github.com/coursecast/coursecast/internal/domain"
)

// User defines the interface for user account data access
type User interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error

	// ActivateStreaming flags the user as a streaming subscriber. A
	// first-time subscriber gets trialEnd set; a returning subscriber
	// gets subscriptionEnd set instead.
	ActivateStreaming(ctx context.Context, userID string, trialEnd, subscriptionEnd *time.Time) error
	DeactivateStreaming(ctx context.Context, userID string) error
	CountActiveStreamingSubscribers(ctx context.Context, now time.Time) (int64, error)

	// UpdateTotalEarnings overwrites the cached earnings counter with a
	// value freshly folded from the ledger
	UpdateTotalEarnings(ctx context.Context, userID string, totalEarnings int64) error
}
