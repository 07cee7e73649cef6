package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &UserRepository{db: db}
}

const userColumns = `user_id, email, role, channel_name, channel_description,
		upload_hours_used, upload_hours_limit, total_earnings,
		is_streaming_subscriber, streaming_trial_ends_at, streaming_subscription_ends_at,
		created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Role, &u.ChannelName, &u.ChannelDescription,
		&u.UploadHoursUsed, &u.UploadHoursLimit, &u.TotalEarnings,
		&u.IsStreamingSubscriber, &u.StreamingTrialEndsAt, &u.StreamingSubscriptionEndsAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID fetches a user by their identifier
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// UpsertUser inserts a new user or updates an existing one's profile fields
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, email, role, channel_name, channel_description, upload_hours_limit)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET email = EXCLUDED.email,
		    role = EXCLUDED.role,
		    channel_name = EXCLUDED.channel_name,
		    channel_description = EXCLUDED.channel_description,
		    updated_at = NOW()
	`

	if user.Role == "" {
		user.Role = domain.RoleViewer
	}
	if user.UploadHoursLimit == 0 {
		user.UploadHoursLimit = 10
	}

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Role, user.ChannelName, user.ChannelDescription, user.UploadHoursLimit)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertUser, err)
	}
	return nil
}

// ActivateStreaming marks the user as a streaming subscriber with the
// given trial or paid-period end
func (r *UserRepository) ActivateStreaming(ctx context.Context, userID string, trialEnd, subscriptionEnd *time.Time) error {
	query := `
		UPDATE users
		SET is_streaming_subscriber = TRUE,
		    streaming_trial_ends_at = COALESCE($2, streaming_trial_ends_at),
		    streaming_subscription_ends_at = COALESCE($3, streaming_subscription_ends_at),
		    updated_at = NOW()
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query, userID, trialEnd, subscriptionEnd)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStreaming, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeactivateStreaming clears the subscriber flag. End dates are kept so
// a prior period remains visible for royalty aggregation.
func (r *UserRepository) DeactivateStreaming(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET is_streaming_subscriber = FALSE, updated_at = NOW()
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStreaming, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// CountActiveStreamingSubscribers counts subscribers whose trial or paid
// period still covers the given instant
func (r *UserRepository) CountActiveStreamingSubscribers(ctx context.Context, now time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM users
		WHERE is_streaming_subscriber
		  AND (streaming_trial_ends_at > $1 OR streaming_subscription_ends_at > $1)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountSubs, err)
	}
	return count, nil
}

// UpdateTotalEarnings overwrites the cached earnings counter
func (r *UserRepository) UpdateTotalEarnings(ctx context.Context, userID string, totalEarnings int64) error {
	query := `UPDATE users SET total_earnings = $2, updated_at = NOW() WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID, totalEarnings)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateEarnings, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
