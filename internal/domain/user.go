package domain

import "time"

// User roles.
const (
	RoleViewer  = "viewer"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// User represents a registered user. Identifier is the opaque subject
// from the identity collaborator; this service never authenticates.
// TotalEarnings is a denormalized cache over the purchase ledger.
type User struct {
	ID                 string     `json:"id" db:"user_id"`
	Email              string     `json:"email,omitempty" db:"email"`
	Role               string     `json:"role" db:"role"`
	ChannelName        string     `json:"channel_name,omitempty" db:"channel_name"`
	ChannelDescription string     `json:"channel_description,omitempty" db:"channel_description"`
	UploadHoursUsed    int        `json:"upload_hours_used" db:"upload_hours_used"`
	UploadHoursLimit   int        `json:"upload_hours_limit" db:"upload_hours_limit"`
	TotalEarnings      int64      `json:"total_earnings" db:"total_earnings"`

	IsStreamingSubscriber       bool       `json:"is_streaming_subscriber" db:"is_streaming_subscriber"`
	StreamingTrialEndsAt        *time.Time `json:"streaming_trial_ends_at,omitempty" db:"streaming_trial_ends_at"`
	StreamingSubscriptionEndsAt *time.Time `json:"streaming_subscription_ends_at,omitempty" db:"streaming_subscription_ends_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasActiveStreamingSubscription reports whether the user may watch
// streaming-tier videos at the given instant: subscriber flag set and
// either the trial or the paid period still running.
func (u *User) HasActiveStreamingSubscription(now time.Time) bool {
	if u == nil || !u.IsStreamingSubscriber {
		return false
	}
	if u.StreamingTrialEndsAt != nil && u.StreamingTrialEndsAt.After(now) {
		return true
	}
	if u.StreamingSubscriptionEndsAt != nil && u.StreamingSubscriptionEndsAt.After(now) {
		return true
	}
	return false
}
