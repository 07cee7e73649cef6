package repository

import (
	"context"

	"github.com/coursecast/coursecast/internal/domain"
)

// CreatorWatchMinutes aggregates watch time by creator for one month
type CreatorWatchMinutes struct {
	CreatorID string
	VideoID   int
	Minutes   int64
}

// Engagement defines the interface for watch history, reactions,
// favorites and comments
type Engagement interface {
	RecordWatch(ctx context.Context, entry *domain.WatchEntry) error
	GetWatchHistory(ctx context.Context, userID string, limit int) ([]domain.WatchEntry, error)

	SetReaction(ctx context.Context, userID string, videoID int, isLike bool) error
	RemoveReaction(ctx context.Context, userID string, videoID int) error

	AddFavorite(ctx context.Context, userID string, videoID int) error
	RemoveFavorite(ctx context.Context, userID string, videoID int) error
	GetFavorites(ctx context.Context, userID string) ([]domain.Video, error)

	AddComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetComments(ctx context.Context, videoID int) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, commentID int, userID string) error

	// StreamingWatchMinutesByMonth folds watch history for one calendar
	// month into per-creator, per-video minute totals, counting only
	// watch time from active streaming subscribers on streaming-tier
	// videos. Used to weight the monthly royalty pool.
	StreamingWatchMinutesByMonth(ctx context.Context, month string) ([]CreatorWatchMinutes, error)
}
