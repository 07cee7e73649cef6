package engagement

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/entitlement"
	"github.com/coursecast/coursecast/internal/repository"
)

// MockEntitlement implements entitlement.Service for testing
type MockEntitlement struct {
	mock.Mock
}

func (m *MockEntitlement) HasAccess(ctx context.Context, userID string, videoID int) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntitlement) AlreadyPurchased(ctx context.Context, userID string, videoID int) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntitlement) InvalidateUser(userID string, videoID int) {
	m.Called(userID, videoID)
}

var _ entitlement.Service = (*MockEntitlement)(nil)

// MockCatalog implements repository.Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalog) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalog) CreateCategory(ctx context.Context, category *domain.Category) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalog) GetSubcategories(ctx context.Context) ([]domain.Subcategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockCatalog) GetSubcategoriesByCategory(ctx context.Context, categoryID int) ([]domain.Subcategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockCatalog) CreateSubcategory(ctx context.Context, subcategory *domain.Subcategory) (int, error) {
	args := m.Called(ctx, subcategory)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalog) GetVideoByID(ctx context.Context, id int) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockCatalog) GetPublishedVideos(ctx context.Context, limit int) ([]domain.Video, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalog) GetVideosByCategory(ctx context.Context, categoryID int) ([]domain.Video, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalog) GetVideosBySubcategory(ctx context.Context, subcategoryID int) ([]domain.Video, error) {
	args := m.Called(ctx, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalog) GetVideosByCreator(ctx context.Context, creatorID string) ([]domain.Video, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalog) SearchVideos(ctx context.Context, query string) ([]domain.Video, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalog) GetTrendingVideos(ctx context.Context, limit int) ([]domain.Video, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockCatalog) CreateVideo(ctx context.Context, video *domain.Video) (int, error) {
	args := m.Called(ctx, video)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalog) UpdateVideo(ctx context.Context, video *domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockCatalog) DeleteVideo(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalog) IncrementViews(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalog) RecountPurchases(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repository.Catalog = (*MockCatalog)(nil)

// MockEngagement implements repository.Engagement for testing
type MockEngagement struct {
	mock.Mock
}

func (m *MockEngagement) RecordWatch(ctx context.Context, entry *domain.WatchEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEngagement) GetWatchHistory(ctx context.Context, userID string, limit int) ([]domain.WatchEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WatchEntry), args.Error(1)
}

func (m *MockEngagement) SetReaction(ctx context.Context, userID string, videoID int, isLike bool) error {
	args := m.Called(ctx, userID, videoID, isLike)
	return args.Error(0)
}

func (m *MockEngagement) RemoveReaction(ctx context.Context, userID string, videoID int) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockEngagement) AddFavorite(ctx context.Context, userID string, videoID int) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockEngagement) RemoveFavorite(ctx context.Context, userID string, videoID int) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockEngagement) GetFavorites(ctx context.Context, userID string) ([]domain.Video, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockEngagement) AddComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockEngagement) GetComments(ctx context.Context, videoID int) ([]domain.Comment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockEngagement) DeleteComment(ctx context.Context, commentID int, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockEngagement) StreamingWatchMinutesByMonth(ctx context.Context, month string) ([]repository.CreatorWatchMinutes, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CreatorWatchMinutes), args.Error(1)
}

var _ repository.Engagement = (*MockEngagement)(nil)
