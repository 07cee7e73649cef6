package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/event"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/repository"
)

// ErrNotOwner is returned when a creator tries to modify a video that
// belongs to someone else.
var ErrNotOwner = errors.New(ErrMsgNotVideoOwner)

// Service exposes the course catalog: categories, video CRUD for
// creators and the public browsing surface.
type Service interface {
	// Categories
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetSubcategories(ctx context.Context, categoryID int) ([]domain.Subcategory, error)
	CreateCategory(ctx context.Context, category *domain.Category) (int, error)
	CreateSubcategory(ctx context.Context, subcategory *domain.Subcategory) (int, error)
	EnsureDefaultCategories(ctx context.Context) error

	// Public browsing
	GetVideo(ctx context.Context, videoID int) (*domain.Video, error)
	ListPublished(ctx context.Context, limit int) ([]domain.Video, error)
	GetVideosByCategory(ctx context.Context, categoryID int) ([]domain.Video, error)
	GetVideosBySubcategory(ctx context.Context, subcategoryID int) ([]domain.Video, error)
	SearchVideos(ctx context.Context, query string) ([]domain.Video, error)
	GetTrendingVideos(ctx context.Context, limit int) ([]domain.Video, error)
	RecordView(ctx context.Context, userID string, videoID int) error

	// Creator surface
	GetCreatorVideos(ctx context.Context, creatorID string) ([]domain.Video, error)
	CreateVideo(ctx context.Context, video *domain.Video) (int, error)
	UpdateVideo(ctx context.Context, creatorID string, video *domain.Video) error
	DeleteVideo(ctx context.Context, creatorID string, videoID int) error
	SetPublished(ctx context.Context, creatorID string, videoID int, published bool) error
}

type service struct {
	catalog repository.Catalog
	users   repository.User
	bus     event.Bus
}

// NewService creates a new catalog service
func NewService(catalog repository.Catalog, users repository.User, bus event.Bus) Service {
	return &service{catalog: catalog, users: users, bus: bus}
}

func (s *service) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.catalog.GetCategories(ctx)
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSlugRequired)
	}
	return s.catalog.GetCategoryBySlug(ctx, slug)
}

func (s *service) GetSubcategories(ctx context.Context, categoryID int) ([]domain.Subcategory, error) {
	if categoryID <= 0 {
		return s.catalog.GetSubcategories(ctx)
	}
	return s.catalog.GetSubcategoriesByCategory(ctx, categoryID)
}

func (s *service) CreateCategory(ctx context.Context, category *domain.Category) (int, error) {
	if strings.TrimSpace(category.Name) == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if strings.TrimSpace(category.Slug) == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSlugRequired)
	}
	return s.catalog.CreateCategory(ctx, category)
}

func (s *service) CreateSubcategory(ctx context.Context, subcategory *domain.Subcategory) (int, error) {
	if strings.TrimSpace(subcategory.Name) == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if strings.TrimSpace(subcategory.Slug) == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgSlugRequired)
	}
	return s.catalog.CreateSubcategory(ctx, subcategory)
}

// defaultCategories are seeded on startup so a fresh install has a
// browsable catalog immediately.
var defaultCategories = []domain.Category{
	{Name: "Programming", Slug: "programming"},
	{Name: "Design", Slug: "design"},
	{Name: "Business", Slug: "business"},
	{Name: "Music", Slug: "music"},
	{Name: "Language", Slug: "language"},
}

func (s *service) EnsureDefaultCategories(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for i := range defaultCategories {
		category := defaultCategories[i]
		_, err := s.catalog.GetCategoryBySlug(ctx, category.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		if _, err := s.catalog.CreateCategory(ctx, &category); err != nil {
			return err
		}
		log.Info(LogMsgCategorySeeded, "slug", category.Slug)
	}
	return nil
}

func (s *service) GetVideo(ctx context.Context, videoID int) (*domain.Video, error) {
	return s.catalog.GetVideoByID(ctx, videoID)
}

func (s *service) ListPublished(ctx context.Context, limit int) ([]domain.Video, error) {
	return s.catalog.GetPublishedVideos(ctx, clampLimit(limit, DefaultListLimit))
}

func (s *service) GetVideosByCategory(ctx context.Context, categoryID int) ([]domain.Video, error) {
	return s.catalog.GetVideosByCategory(ctx, categoryID)
}

func (s *service) GetVideosBySubcategory(ctx context.Context, subcategoryID int) ([]domain.Video, error) {
	return s.catalog.GetVideosBySubcategory(ctx, subcategoryID)
}

func (s *service) SearchVideos(ctx context.Context, query string) ([]domain.Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Video{}, nil
	}
	return s.catalog.SearchVideos(ctx, query)
}

func (s *service) GetTrendingVideos(ctx context.Context, limit int) ([]domain.Video, error) {
	return s.catalog.GetTrendingVideos(ctx, clampLimit(limit, DefaultTrendingLimit))
}

// RecordView bumps the view counter. The counter is a display cache; a
// lost increment is acceptable, so failures to publish the event are
// logged and swallowed.
func (s *service) RecordView(ctx context.Context, userID string, videoID int) error {
	if err := s.catalog.IncrementViews(ctx, videoID); err != nil {
		return err
	}
	if err := s.bus.Publish(ctx, event.NewVideoViewedEvent(userID, videoID)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToLogView, "videoID", videoID, "error", err)
	}
	return nil
}

func (s *service) GetCreatorVideos(ctx context.Context, creatorID string) ([]domain.Video, error) {
	return s.catalog.GetVideosByCreator(ctx, creatorID)
}

func (s *service) CreateVideo(ctx context.Context, video *domain.Video) (int, error) {
	if _, err := s.users.GetUserByID(ctx, video.CreatorID); err != nil {
		return 0, err
	}
	if err := validateVideo(video); err != nil {
		return 0, err
	}

	id, err := s.catalog.CreateVideo(ctx, video)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSaveVideo, err)
	}

	logger.FromContext(ctx).Info(LogMsgVideoCreated,
		"videoID", id, "creatorID", video.CreatorID, "tier", video.Tier)
	return id, nil
}

func (s *service) UpdateVideo(ctx context.Context, creatorID string, video *domain.Video) error {
	existing, err := s.ownedVideo(ctx, creatorID, video.ID)
	if err != nil {
		return err
	}
	video.CreatorID = existing.CreatorID

	if err := validateVideo(video); err != nil {
		return err
	}
	if err := s.catalog.UpdateVideo(ctx, video); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveVideo, err)
	}

	logger.FromContext(ctx).Info(LogMsgVideoUpdated, "videoID", video.ID)
	return nil
}

func (s *service) DeleteVideo(ctx context.Context, creatorID string, videoID int) error {
	if _, err := s.ownedVideo(ctx, creatorID, videoID); err != nil {
		return err
	}
	if err := s.catalog.DeleteVideo(ctx, videoID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgVideoDeleted, "videoID", videoID, "creatorID", creatorID)
	return nil
}

func (s *service) SetPublished(ctx context.Context, creatorID string, videoID int, published bool) error {
	video, err := s.ownedVideo(ctx, creatorID, videoID)
	if err != nil {
		return err
	}
	if published && video.Tier == domain.TierBasic && video.Price <= 0 {
		return fmt.Errorf("%w: cannot publish without a price", domain.ErrPriceNotSet)
	}
	if video.IsPublished == published {
		return nil
	}

	video.IsPublished = published
	if err := s.catalog.UpdateVideo(ctx, video); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveVideo, err)
	}

	logger.FromContext(ctx).Info(LogMsgVideoPublished, "videoID", videoID, "published", published)
	return nil
}

// ownedVideo loads a video and checks it belongs to the caller
func (s *service) ownedVideo(ctx context.Context, creatorID string, videoID int) (*domain.Video, error) {
	video, err := s.catalog.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetVideo, err)
	}
	if video.CreatorID != creatorID {
		return nil, ErrNotOwner
	}
	return video, nil
}

// validateVideo enforces the tier pricing rules: basic videos carry a
// platform price, premium videos point at an external checkout, and
// streaming videos carry no price at all.
func validateVideo(video *domain.Video) error {
	if strings.TrimSpace(video.Title) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgTitleRequired)
	}
	if strings.TrimSpace(video.VideoURL) == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgVideoURLRequired)
	}
	if !video.Tier.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrTierUnknown, video.Tier)
	}

	switch video.Tier {
	case domain.TierBasic:
		if video.ExternalPaymentURL != "" || video.ExternalPrice != 0 {
			return fmt.Errorf("%w: basic tier is settled on the platform", domain.ErrInvalidInput)
		}
	case domain.TierPremium:
		if strings.TrimSpace(video.ExternalPaymentURL) == "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgExternalURLMissing)
		}
		if video.Price != 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPriceOnBasicOnly)
		}
	case domain.TierStreaming:
		if video.Price != 0 || video.ExternalPrice != 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPriceOnBasicOnly)
		}
	}
	return nil
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
