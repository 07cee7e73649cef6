package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// EngagementRepository implements watch history, reactions, favorites
// and comments for PostgreSQL
type EngagementRepository struct {
	db *pgxpool.Pool
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *pgxpool.Pool) repository.Engagement {
	return &EngagementRepository{db: db}
}

// RecordWatch appends a watch history entry
func (r *EngagementRepository) RecordWatch(ctx context.Context, entry *domain.WatchEntry) error {
	query := `
		INSERT INTO watch_history (user_id, video_id, watch_seconds)
		VALUES ($1, $2, $3)
		RETURNING watch_id, watched_at
	`

	err := r.db.QueryRow(ctx, query, entry.UserID, entry.VideoID, entry.WatchSeconds).
		Scan(&entry.ID, &entry.WatchedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordWatch, err)
	}
	return nil
}

// GetWatchHistory returns a user's most recent watch entries
func (r *EngagementRepository) GetWatchHistory(ctx context.Context, userID string, limit int) ([]domain.WatchEntry, error) {
	query := `
		SELECT watch_id, user_id, video_id, watch_seconds, watched_at
		FROM watch_history
		WHERE user_id = $1
		ORDER BY watched_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWatchHistory, err)
	}
	defer rows.Close()

	var entries []domain.WatchEntry
	for rows.Next() {
		var e domain.WatchEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.VideoID, &e.WatchSeconds, &e.WatchedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryWatchHistory, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetReaction upserts the user's like/dislike on a video and keeps the
// video's denormalized counters in step
func (r *EngagementRepository) SetReaction(ctx context.Context, userID string, videoID int, isLike bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	// Remove any prior reaction so the counter adjustments stay exact
	var hadLike *bool
	err = tx.QueryRow(ctx, `
		DELETE FROM video_reactions WHERE user_id = $1 AND video_id = $2 RETURNING is_like
	`, userID, videoID).Scan(&hadLike)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetReaction, err)
	}

	if hadLike != nil {
		col := "dislikes"
		if *hadLike {
			col = "likes"
		}
		if _, err := tx.Exec(ctx, fmt.Sprintf(`UPDATE videos SET %s = GREATEST(%s - 1, 0) WHERE video_id = $1`, col, col), videoID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSetReaction, err)
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO video_reactions (user_id, video_id, is_like) VALUES ($1, $2, $3)
	`, userID, videoID, isLike); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetReaction, err)
	}

	col := "dislikes"
	if isLike {
		col = "likes"
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`UPDATE videos SET %s = %s + 1 WHERE video_id = $1`, col, col), videoID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetReaction, err)
	}

	return tx.Commit(ctx)
}

// RemoveReaction deletes the user's reaction and decrements the counter
func (r *EngagementRepository) RemoveReaction(ctx context.Context, userID string, videoID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var wasLike bool
	err = tx.QueryRow(ctx, `
		DELETE FROM video_reactions WHERE user_id = $1 AND video_id = $2 RETURNING is_like
	`, userID, videoID).Scan(&wasLike)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveReaction, err)
	}

	col := "dislikes"
	if wasLike {
		col = "likes"
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`UPDATE videos SET %s = GREATEST(%s - 1, 0) WHERE video_id = $1`, col, col), videoID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveReaction, err)
	}

	return tx.Commit(ctx)
}

// AddFavorite saves a video for a user
func (r *EngagementRepository) AddFavorite(ctx context.Context, userID string, videoID int) error {
	query := `
		INSERT INTO favorites (user_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, userID, videoID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddFavorite, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlreadyFavorited
	}
	return nil
}

// RemoveFavorite unsaves a video
func (r *EngagementRepository) RemoveFavorite(ctx context.Context, userID string, videoID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND video_id = $2`, userID, videoID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveFavorite, err)
	}
	return nil
}

// GetFavorites returns the videos a user has saved, newest saves first
func (r *EngagementRepository) GetFavorites(ctx context.Context, userID string) ([]domain.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE video_id IN (SELECT video_id FROM favorites WHERE user_id = $1)
		ORDER BY (SELECT f.created_at FROM favorites f WHERE f.user_id = $1 AND f.video_id = videos.video_id) DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFavorites, err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryFavorites, err)
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// AddComment inserts a comment or reply
func (r *EngagementRepository) AddComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (video_id, user_id, content, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, comment.VideoID, comment.UserID, comment.Content, comment.ParentID).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertComment, err)
	}
	return comment, nil
}

// GetComments returns a video's comments, newest first
func (r *EngagementRepository) GetComments(ctx context.Context, videoID int) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, video_id, user_id, content, parent_id, likes, created_at, updated_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryComments, err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.Content, &c.ParentID, &c.Likes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryComments, err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// DeleteComment removes a comment if it belongs to the given user
func (r *EngagementRepository) DeleteComment(ctx context.Context, commentID int, userID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteComment, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// StreamingWatchMinutesByMonth folds one month of watch history into
// per-creator, per-video minute totals. Only streaming-tier videos and
// watch time from flagged streaming subscribers count toward the pool.
func (r *EngagementRepository) StreamingWatchMinutesByMonth(ctx context.Context, month string) ([]repository.CreatorWatchMinutes, error) {
	query := `
		SELECT v.creator_id, v.video_id, FLOOR(SUM(w.watch_seconds) / 60.0)::BIGINT AS minutes
		FROM watch_history w
		JOIN videos v ON v.video_id = w.video_id
		JOIN users u ON u.user_id = w.user_id
		WHERE v.tier = 'streaming'
		  AND u.is_streaming_subscriber
		  AND to_char(w.watched_at, 'YYYY-MM') = $1
		GROUP BY v.creator_id, v.video_id
		HAVING SUM(w.watch_seconds) >= 60
	`

	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFoldWatchMinutes, err)
	}
	defer rows.Close()

	var totals []repository.CreatorWatchMinutes
	for rows.Next() {
		var t repository.CreatorWatchMinutes
		if err := rows.Scan(&t.CreatorID, &t.VideoID, &t.Minutes); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFoldWatchMinutes, err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
