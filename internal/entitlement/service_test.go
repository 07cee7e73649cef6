package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coursecast/coursecast/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(ledger *MockLedger, catalog *MockCatalog, users *MockUsers) *service {
	return &service{
		ledger:  ledger,
		catalog: catalog,
		users:   users,
		cache:   newAccessCache(16, time.Minute),
		now:     fixedNow,
	}
}

func basicVideo() *domain.Video {
	return &domain.Video{ID: 7, CreatorID: "creator-1", Tier: domain.TierBasic, Price: 5000, IsPublished: true}
}

func streamingVideo() *domain.Video {
	return &domain.Video{ID: 8, CreatorID: "creator-1", Tier: domain.TierStreaming, IsPublished: true}
}

func premiumVideo() *domain.Video {
	return &domain.Video{ID: 9, CreatorID: "creator-1", Tier: domain.TierPremium, ExternalPrice: 20000, IsPublished: true}
}

func TestHasAccess_BasicTier(t *testing.T) {
	ctx := context.Background()

	t.Run("granted with ledger row", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 7).Return(basicVideo(), nil)
		ledger.On("HasPurchase", ctx, "buyer-1", 7).Return(true, nil)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "buyer-1", 7)

		require.NoError(t, err)
		assert.True(t, granted)
	})

	t.Run("denied without ledger row", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 7).Return(basicVideo(), nil)
		ledger.On("HasPurchase", ctx, "buyer-1", 7).Return(false, nil)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "buyer-1", 7)

		require.NoError(t, err)
		assert.False(t, granted)
	})

	t.Run("grant is cached, denial is not", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 7).Return(basicVideo(), nil)
		ledger.On("HasPurchase", ctx, "buyer-1", 7).Return(true, nil).Once()
		ledger.On("HasPurchase", ctx, "buyer-2", 7).Return(false, nil).Twice()

		svc := newTestService(ledger, catalog, users)

		for i := 0; i < 3; i++ {
			granted, err := svc.HasAccess(ctx, "buyer-1", 7)
			require.NoError(t, err)
			assert.True(t, granted)
		}
		for i := 0; i < 2; i++ {
			granted, err := svc.HasAccess(ctx, "buyer-2", 7)
			require.NoError(t, err)
			assert.False(t, granted)
		}

		ledger.AssertExpectations(t)
	})
}

func TestHasAccess_StreamingTier(t *testing.T) {
	ctx := context.Background()

	activeTrial := fixedNow().AddDate(0, 0, 14)
	lapsed := fixedNow().AddDate(0, 0, -1)

	tests := []struct {
		name string
		user *domain.User
		want bool
	}{
		{
			name: "active trial grants",
			user: &domain.User{ID: "sub-1", IsStreamingSubscriber: true, StreamingTrialEndsAt: &activeTrial},
			want: true,
		},
		{
			name: "active paid period grants",
			user: &domain.User{ID: "sub-1", IsStreamingSubscriber: true, StreamingSubscriptionEndsAt: &activeTrial},
			want: true,
		},
		{
			name: "lapsed dates deny",
			user: &domain.User{ID: "sub-1", IsStreamingSubscriber: true, StreamingTrialEndsAt: &lapsed, StreamingSubscriptionEndsAt: &lapsed},
			want: false,
		},
		{
			name: "flag unset denies even with future date",
			user: &domain.User{ID: "sub-1", IsStreamingSubscriber: false, StreamingTrialEndsAt: &activeTrial},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := new(MockLedger)
			catalog := new(MockCatalog)
			users := new(MockUsers)

			catalog.On("GetVideoByID", ctx, 8).Return(streamingVideo(), nil)
			users.On("GetUserByID", ctx, "sub-1").Return(tt.user, nil)

			svc := newTestService(ledger, catalog, users)
			granted, err := svc.HasAccess(ctx, "sub-1", 8)

			require.NoError(t, err)
			assert.Equal(t, tt.want, granted)
			ledger.AssertNotCalled(t, "HasPurchase", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("unknown user denies without error", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 8).Return(streamingVideo(), nil)
		users.On("GetUserByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "ghost", 8)

		require.NoError(t, err)
		assert.False(t, granted)
	})
}

func TestHasAccess_PremiumTier(t *testing.T) {
	ctx := context.Background()

	t.Run("denied by default", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 9).Return(premiumVideo(), nil)
		ledger.On("HasPurchase", ctx, "buyer-1", 9).Return(false, nil)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "buyer-1", 9)

		require.NoError(t, err)
		assert.False(t, granted)
	})

	t.Run("granted after external purchase row", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 9).Return(premiumVideo(), nil)
		ledger.On("HasPurchase", ctx, "buyer-1", 9).Return(true, nil)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "buyer-1", 9)

		require.NoError(t, err)
		assert.True(t, granted)
	})
}

func TestHasAccess_Edges(t *testing.T) {
	ctx := context.Background()

	t.Run("creator always has access", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		video := basicVideo()
		video.IsPublished = false
		catalog.On("GetVideoByID", ctx, 7).Return(video, nil)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "creator-1", 7)

		require.NoError(t, err)
		assert.True(t, granted)
	})

	t.Run("unpublished denies everyone else", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		video := basicVideo()
		video.IsPublished = false
		catalog.On("GetVideoByID", ctx, 7).Return(video, nil)

		svc := newTestService(ledger, catalog, users)
		granted, err := svc.HasAccess(ctx, "buyer-1", 7)

		require.NoError(t, err)
		assert.False(t, granted)
	})

	t.Run("unknown video errors", func(t *testing.T) {
		ledger := new(MockLedger)
		catalog := new(MockCatalog)
		users := new(MockUsers)

		catalog.On("GetVideoByID", ctx, 99).Return(nil, domain.ErrVideoNotFound)

		svc := newTestService(ledger, catalog, users)
		_, err := svc.HasAccess(ctx, "buyer-1", 99)

		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}
