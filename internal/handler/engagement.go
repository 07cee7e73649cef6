package handler

import (
	"context"
	"net/http"

	"github.com/coursecast/coursecast/internal/engagement"
)

// EngagementHandler serves reactions, favorites, comments and watch history
type EngagementHandler struct {
	engagement engagement.Service
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementSvc engagement.Service) *EngagementHandler {
	return &EngagementHandler{engagement: engagementSvc}
}

// WatchRequest reports time spent watching a video
type WatchRequest struct {
	WatchSeconds int `json:"watch_seconds" validate:"required,gt=0"`
}

// HandleRecordWatch appends a watch-history entry
// @Summary Record watch time
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/videos/{id}/watch [post]
func (h *EngagementHandler) HandleRecordWatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	var req WatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record watch"); err != nil {
		return
	}

	if err := h.engagement.RecordWatch(r.Context(), userID, videoID, req.WatchSeconds); err != nil {
		respondServiceError(w, r, ErrMsgRecordWatchFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWatchRecorded})
}

// HandleGetWatchHistory lists the caller's watch history
// @Summary Get watch history
// @Tags engagement
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {array} domain.WatchEntry
// @Router /api/v1/watch-history [get]
func (h *EngagementHandler) HandleGetWatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}

	entries, err := h.engagement.GetWatchHistory(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgRecordWatchFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleLike records a like on a video
// @Summary Like video
// @Tags engagement
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/videos/{id}/like [post]
func (h *EngagementHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, h.engagement.Like)
}

// HandleDislike records a dislike on a video
// @Summary Dislike video
// @Tags engagement
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/videos/{id}/dislike [post]
func (h *EngagementHandler) HandleDislike(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, h.engagement.Dislike)
}

// HandleRemoveReaction clears the caller's reaction on a video
// @Summary Remove reaction
// @Tags engagement
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/videos/{id}/reaction [delete]
func (h *EngagementHandler) HandleRemoveReaction(w http.ResponseWriter, r *http.Request) {
	h.handleReaction(w, r, h.engagement.RemoveReaction)
}

func (h *EngagementHandler) handleReaction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, userID string, videoID int) error) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	if err := action(r.Context(), userID, videoID); err != nil {
		respondServiceError(w, r, ErrMsgReactionFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgReactionSaved})
}

// HandleAddFavorite saves a video to the caller's favorites
// @Summary Add favorite
// @Tags engagement
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/videos/{id}/favorite [post]
func (h *EngagementHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	if err := h.engagement.AddFavorite(r.Context(), userID, videoID); err != nil {
		respondServiceError(w, r, ErrMsgFavoriteFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteAdded})
}

// HandleRemoveFavorite removes a video from the caller's favorites
// @Summary Remove favorite
// @Tags engagement
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/videos/{id}/favorite [delete]
func (h *EngagementHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	if err := h.engagement.RemoveFavorite(r.Context(), userID, videoID); err != nil {
		respondServiceError(w, r, ErrMsgFavoriteFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteRemoved})
}

// HandleGetFavorites lists the caller's favorite videos
// @Summary List favorites
// @Tags engagement
// @Produce json
// @Success 200 {array} domain.Video
// @Router /api/v1/favorites [get]
func (h *EngagementHandler) HandleGetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	videos, err := h.engagement.GetFavorites(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetFavoritesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

// CommentRequest is the payload for posting a comment
type CommentRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	ParentID *int64 `json:"parent_id"`
}

// HandleAddComment posts a comment or reply on a video
// @Summary Add comment
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/videos/{id}/comments [post]
func (h *EngagementHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	var req CommentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add comment"); err != nil {
		return
	}

	comment, err := h.engagement.AddComment(r.Context(), userID, videoID, req.Content, req.ParentID)
	if err != nil {
		respondServiceError(w, r, ErrMsgCommentFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

// HandleGetComments lists a video's comments
// @Summary List comments
// @Tags engagement
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {array} domain.Comment
// @Router /api/v1/videos/{id}/comments [get]
func (h *EngagementHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	comments, err := h.engagement.GetComments(r.Context(), videoID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCommentsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

// HandleDeleteComment deletes the caller's own comment
// @Summary Delete comment
// @Tags engagement
// @Produce json
// @Param commentID path int true "Comment ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/comments/{commentID} [delete]
func (h *EngagementHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	commentID, ok := URLParamInt(r, w, "commentID", ErrMsgInvalidCommentID)
	if !ok {
		return
	}

	if err := h.engagement.DeleteComment(r.Context(), int64(commentID), userID); err != nil {
		respondServiceError(w, r, ErrMsgCommentFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCommentDeleted})
}
