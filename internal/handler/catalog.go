package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/coursecast/coursecast/internal/catalog"
	"github.com/coursecast/coursecast/internal/domain"
)

// CatalogHandler serves category and video browsing plus the creator
// video management surface
type CatalogHandler struct {
	catalog catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogSvc}
}

// HandleGetCategories lists all categories
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /api/v1/categories [get]
func (h *CatalogHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.GetCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCategoriesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// HandleGetCategoryBySlug returns one category
// @Summary Get category by slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} domain.Category
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{slug} [get]
func (h *CatalogHandler) HandleGetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	category, err := h.catalog.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCategoriesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// HandleGetSubcategories lists subcategories, optionally scoped to a category
// @Summary List subcategories
// @Tags catalog
// @Produce json
// @Param category_id query int false "Category ID"
// @Success 200 {array} domain.Subcategory
// @Router /api/v1/subcategories [get]
func (h *CatalogHandler) HandleGetSubcategories(w http.ResponseWriter, r *http.Request) {
	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCategoryID)
			return
		}
		categoryID = parsed
	}

	subcategories, err := h.catalog.GetSubcategories(r.Context(), categoryID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCategoriesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, subcategories)
}

// HandleListVideos lists published videos
// @Summary List published videos
// @Tags catalog
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {array} domain.Video
// @Router /api/v1/videos [get]
func (h *CatalogHandler) HandleListVideos(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}
	videos, err := h.catalog.ListPublished(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetVideosFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

// HandleGetVideo returns one video
// @Summary Get video
// @Tags catalog
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} domain.Video
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/videos/{id} [get]
func (h *CatalogHandler) HandleGetVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}
	video, err := h.catalog.GetVideo(r.Context(), videoID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetVideosFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, video)
}

// HandleSearchVideos searches published videos by title and description
// @Summary Search videos
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} domain.Video
// @Router /api/v1/videos/search [get]
func (h *CatalogHandler) HandleSearchVideos(w http.ResponseWriter, r *http.Request) {
	query, ok := GetQueryParam(r, w, "q")
	if !ok {
		return
	}
	videos, err := h.catalog.SearchVideos(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, ErrMsgSearchFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

// HandleGetTrending lists videos by view count
// @Summary Trending videos
// @Tags catalog
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {array} domain.Video
// @Router /api/v1/videos/trending [get]
func (h *CatalogHandler) HandleGetTrending(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}
	videos, err := h.catalog.GetTrendingVideos(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetVideosFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

// HandleGetVideosByCategory lists published videos in a category
// @Summary Videos by category
// @Tags catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} domain.Video
// @Router /api/v1/categories/{id}/videos [get]
func (h *CatalogHandler) HandleGetVideosByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := URLParamInt(r, w, "id", ErrMsgInvalidCategoryID)
	if !ok {
		return
	}
	videos, err := h.catalog.GetVideosByCategory(r.Context(), categoryID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetVideosFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, videos)
}

// HandleRecordView bumps a video's view counter
// @Summary Record a view
// @Tags catalog
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/videos/{id}/view [post]
func (h *CatalogHandler) HandleRecordView(w http.ResponseWriter, r *http.Request) {
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}
	// Views are counted for anonymous requests too
	userID := r.Header.Get(HeaderUserID)

	if err := h.catalog.RecordView(r.Context(), userID, videoID); err != nil {
		respondServiceError(w, r, ErrMsgRecordViewFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgViewRecorded})
}

// VideoRequest is the payload for creating and updating videos
type VideoRequest struct {
	Title              string   `json:"title" validate:"required,max=200"`
	Description        string   `json:"description" validate:"max=5000"`
	VideoURL           string   `json:"video_url" validate:"required,url"`
	ThumbnailURL       string   `json:"thumbnail_url" validate:"omitempty,url"`
	DurationMinutes    int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	CategoryID         int      `json:"category_id"`
	SubcategoryID      int      `json:"subcategory_id"`
	Tier               string   `json:"tier" validate:"required,tier"`
	Price              int64    `json:"price" validate:"omitempty,gt=0"`
	ExternalPaymentURL string   `json:"external_payment_url" validate:"omitempty,url"`
	ExternalPrice      int64    `json:"external_price" validate:"omitempty,gt=0"`
	Tags               []string `json:"tags"`
	Language           string   `json:"language"`
}

func (req *VideoRequest) toVideo(creatorID string) *domain.Video {
	return &domain.Video{
		Title:              req.Title,
		Description:        req.Description,
		VideoURL:           req.VideoURL,
		ThumbnailURL:       req.ThumbnailURL,
		DurationMinutes:    req.DurationMinutes,
		CategoryID:         req.CategoryID,
		SubcategoryID:      req.SubcategoryID,
		CreatorID:          creatorID,
		Tier:               domain.Tier(req.Tier),
		Price:              req.Price,
		ExternalPaymentURL: req.ExternalPaymentURL,
		ExternalPrice:      req.ExternalPrice,
		Tags:               req.Tags,
		Language:           req.Language,
	}
}

// HandleCreateVideo creates a draft video for the caller
// @Summary Create video
// @Tags creator
// @Accept json
// @Produce json
// @Success 201 {object} domain.Video
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/creator/videos [post]
func (h *CatalogHandler) HandleCreateVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}

	var req VideoRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create video"); err != nil {
		return
	}

	video := req.toVideo(userID)
	id, err := h.catalog.CreateVideo(r.Context(), video)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateVideoFailed, err)
		return
	}
	video.ID = id

	respondJSON(w, http.StatusCreated, video)
}

// HandleUpdateVideo updates a video owned by the caller
// @Summary Update video
// @Tags creator
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/creator/videos/{id} [put]
func (h *CatalogHandler) HandleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	var req VideoRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update video"); err != nil {
		return
	}

	video := req.toVideo(userID)
	video.ID = videoID
	if err := h.catalog.UpdateVideo(r.Context(), userID, video); err != nil {
		respondServiceError(w, r, ErrMsgUpdateVideoFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, video)
}

// HandleDeleteVideo deletes a video owned by the caller
// @Summary Delete video
// @Tags creator
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/creator/videos/{id} [delete]
func (h *CatalogHandler) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	if err := h.catalog.DeleteVideo(r.Context(), userID, videoID); err != nil {
		respondServiceError(w, r, ErrMsgDeleteVideoFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgVideoDeleted})
}

// PublishRequest toggles a video's publish state
type PublishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

// HandlePublishVideo changes a video's publish state
// @Summary Publish or unpublish video
// @Tags creator
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/creator/videos/{id}/publish [post]
func (h *CatalogHandler) HandlePublishVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videoID, ok := URLParamInt(r, w, "id", ErrMsgInvalidVideoID)
	if !ok {
		return
	}

	var req PublishRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Publish video"); err != nil {
		return
	}

	if err := h.catalog.SetPublished(r.Context(), userID, videoID, *req.Published); err != nil {
		respondServiceError(w, r, ErrMsgPublishVideoFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Publish state updated"})
}

// HandleGetMyVideos lists the caller's videos including drafts
// @Summary List own videos
// @Tags creator
// @Produce json
// @Success 200 {array} domain.Video
// @Router /api/v1/creator/videos [get]
func (h *CatalogHandler) HandleGetMyVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r, w)
	if !ok {
		return
	}
	videos, err := h.catalog.GetCreatorVideos(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetVideosFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, videos)
}
