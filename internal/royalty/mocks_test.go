package royalty

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// MockStore implements RoyaltyStore for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) UpsertRoyaltyPeriod(ctx context.Context, period *domain.RoyaltyPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockStore) GetRoyaltiesByCreator(ctx context.Context, creatorID string) ([]domain.RoyaltyPeriod, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoyaltyPeriod), args.Error(1)
}

func (m *MockStore) GetRoyaltiesByMonth(ctx context.Context, month string) ([]domain.RoyaltyPeriod, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoyaltyPeriod), args.Error(1)
}

func (m *MockStore) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

var _ RoyaltyStore = (*MockStore)(nil)

// MockTx implements repository.Tx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) UpsertRoyaltyPeriod(ctx context.Context, period *domain.RoyaltyPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockTx) UpdateTotalEarnings(ctx context.Context, userID string, totalEarnings int64) error {
	args := m.Called(ctx, userID, totalEarnings)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ repository.Tx = (*MockTx)(nil)

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

// MockLedger implements the ledger fold royalty needs
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
