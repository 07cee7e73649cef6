package catalog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// MockLedger implements repository.Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) SettlePurchase(ctx context.Context, purchase *domain.Purchase) (bool, error) {
	args := m.Called(ctx, purchase)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) HasPurchase(ctx context.Context, userID string, videoID int) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) GetPurchaseByRef(ctx context.Context, paymentRef string) (*domain.Purchase, error) {
	args := m.Called(ctx, paymentRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockLedger) GetPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockLedger) SumCreatorEarnings(ctx context.Context, creatorID string) (int64, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetEarningsByVideo(ctx context.Context, creatorID string) ([]repository.VideoEarnings, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VideoEarnings), args.Error(1)
}

func (m *MockLedger) GetEarningsByMonth(ctx context.Context, creatorID string) ([]repository.MonthlyEarnings, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthlyEarnings), args.Error(1)
}

var _ repository.Ledger = (*MockLedger)(nil)

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

// MockUsers implements repository.User for testing
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUsers) UpsertUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUsers) ActivateStreaming(ctx context.Context, userID string, trialEnd, subscriptionEnd *time.Time) error {
	args := m.Called(ctx, userID, trialEnd, subscriptionEnd)
	return args.Error(0)
}

func (m *MockUsers) DeactivateStreaming(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUsers) CountActiveStreamingSubscribers(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsers) UpdateTotalEarnings(ctx context.Context, userID string, totalEarnings int64) error {
	args := m.Called(ctx, userID, totalEarnings)
	return args.Error(0)
}

var _ repository.User = (*MockUsers)(nil)
