package engagement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/entitlement"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/repository"
)

// Service covers viewer engagement: watch history, reactions,
// favorites and comments. Watch history is load bearing, it feeds the
// monthly royalty weights; the rest is social surface.
type Service interface {
	RecordWatch(ctx context.Context, userID string, videoID int, watchSeconds int) error
	GetWatchHistory(ctx context.Context, userID string, limit int) ([]domain.WatchEntry, error)

	Like(ctx context.Context, userID string, videoID int) error
	Dislike(ctx context.Context, userID string, videoID int) error
	RemoveReaction(ctx context.Context, userID string, videoID int) error

	AddFavorite(ctx context.Context, userID string, videoID int) error
	RemoveFavorite(ctx context.Context, userID string, videoID int) error
	GetFavorites(ctx context.Context, userID string) ([]domain.Video, error)

	AddComment(ctx context.Context, userID string, videoID int, content string, parentID *int64) (*domain.Comment, error)
	GetComments(ctx context.Context, videoID int) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, commentID int64, userID string) error
}

type service struct {
	engagement  repository.Engagement
	catalog     repository.Catalog
	entitlement entitlement.Service
	now         func() time.Time
}

// NewService creates a new engagement service
func NewService(engagement repository.Engagement, catalog repository.Catalog, entitlements entitlement.Service) Service {
	return &service{
		engagement:  engagement,
		catalog:     catalog,
		entitlement: entitlements,
		now:         time.Now,
	}
}

// RecordWatch appends a watch entry. Only entitled viewers accrue watch
// time so the royalty fold never counts minutes from users who could
// not legitimately play the video.
func (s *service) RecordWatch(ctx context.Context, userID string, videoID int, watchSeconds int) error {
	if watchSeconds <= 0 || watchSeconds > MaxWatchSeconds {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgWatchSecondsInvalid)
	}

	allowed, err := s.entitlement.HasAccess(ctx, userID, videoID)
	if err != nil {
		return err
	}
	if !allowed {
		logger.FromContext(ctx).Warn(LogMsgWatchDenied, "userID", userID, "videoID", videoID)
		return domain.ErrNotEntitled
	}

	entry := &domain.WatchEntry{
		UserID:       userID,
		VideoID:      videoID,
		WatchSeconds: watchSeconds,
		WatchedAt:    s.now(),
	}
	if err := s.engagement.RecordWatch(ctx, entry); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgWatchRecorded,
		"userID", userID, "videoID", videoID, "watchSeconds", watchSeconds)
	return nil
}

func (s *service) GetWatchHistory(ctx context.Context, userID string, limit int) ([]domain.WatchEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.engagement.GetWatchHistory(ctx, userID, limit)
}

func (s *service) Like(ctx context.Context, userID string, videoID int) error {
	if err := s.videoExists(ctx, videoID); err != nil {
		return err
	}
	return s.engagement.SetReaction(ctx, userID, videoID, true)
}

func (s *service) Dislike(ctx context.Context, userID string, videoID int) error {
	if err := s.videoExists(ctx, videoID); err != nil {
		return err
	}
	return s.engagement.SetReaction(ctx, userID, videoID, false)
}

func (s *service) RemoveReaction(ctx context.Context, userID string, videoID int) error {
	return s.engagement.RemoveReaction(ctx, userID, videoID)
}

func (s *service) AddFavorite(ctx context.Context, userID string, videoID int) error {
	if err := s.videoExists(ctx, videoID); err != nil {
		return err
	}
	return s.engagement.AddFavorite(ctx, userID, videoID)
}

func (s *service) RemoveFavorite(ctx context.Context, userID string, videoID int) error {
	return s.engagement.RemoveFavorite(ctx, userID, videoID)
}

func (s *service) GetFavorites(ctx context.Context, userID string) ([]domain.Video, error) {
	return s.engagement.GetFavorites(ctx, userID)
}

func (s *service) AddComment(ctx context.Context, userID string, videoID int, content string, parentID *int64) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCommentEmpty)
	}
	if len(content) > MaxCommentLength {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCommentTooLong)
	}
	if err := s.videoExists(ctx, videoID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parents, err := s.engagement.GetComments(ctx, videoID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, c := range parents {
			if c.ID == *parentID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", domain.ErrCommentNotFound, ErrMsgParentMismatch)
		}
	}

	comment, err := s.engagement.AddComment(ctx, &domain.Comment{
		VideoID:  videoID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgCommentAdded, "videoID", videoID, "commentID", comment.ID)
	return comment, nil
}

func (s *service) GetComments(ctx context.Context, videoID int) ([]domain.Comment, error) {
	return s.engagement.GetComments(ctx, videoID)
}

func (s *service) DeleteComment(ctx context.Context, commentID int64, userID string) error {
	if err := s.engagement.DeleteComment(ctx, int(commentID), userID); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgCommentDeleted, "commentID", commentID)
	return nil
}

func (s *service) videoExists(ctx context.Context, videoID int) error {
	_, err := s.catalog.GetVideoByID(ctx, videoID)
	return err
}
