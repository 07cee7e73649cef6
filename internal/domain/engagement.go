package domain

import "time"

// WatchEntry records time spent watching a video. Entries feed the
// monthly streaming royalty aggregation.
type WatchEntry struct {
	ID           int64     `json:"id" db:"watch_id"`
	UserID       string    `json:"user_id" db:"user_id"`
	VideoID      int       `json:"video_id" db:"video_id"`
	WatchSeconds int       `json:"watch_seconds" db:"watch_seconds"`
	WatchedAt    time.Time `json:"watched_at" db:"watched_at"`
}

// VideoReaction is a user's like or dislike on a video. One row per
// (video, user) pair; switching between like and dislike updates it.
type VideoReaction struct {
	ID        int64     `json:"id" db:"reaction_id"`
	VideoID   int       `json:"video_id" db:"video_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	IsLike    bool      `json:"is_like" db:"is_like"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Favorite marks a video saved by a user.
type Favorite struct {
	ID        int64     `json:"id" db:"favorite_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	VideoID   int       `json:"video_id" db:"video_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Comment is a user comment on a video. ParentID is set for replies.
type Comment struct {
	ID        int64     `json:"id" db:"comment_id"`
	VideoID   int       `json:"video_id" db:"video_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	ParentID  *int64    `json:"parent_id,omitempty" db:"parent_id"`
	Likes     int       `json:"likes" db:"likes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
