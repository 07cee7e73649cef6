package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input   string
		want    Tier
		wantErr bool
	}{
		{"streaming", TierStreaming, false},
		{"basic", TierBasic, false},
		{"premium", TierPremium, false},
		{"free", "", true},
		{"", "", true},
		{"BASIC", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTier(tt.input)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrTierUnknown, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestTierPlatformSettled(t *testing.T) {
	assert.True(t, TierBasic.PlatformSettled())
	assert.False(t, TierPremium.PlatformSettled())
	assert.False(t, TierStreaming.PlatformSettled())
}

func TestVideoPurchasable(t *testing.T) {
	v := &Video{Tier: TierBasic, Price: 5000, IsPublished: true}
	assert.True(t, v.Purchasable())

	unpublished := &Video{Tier: TierBasic, Price: 5000}
	assert.False(t, unpublished.Purchasable())

	premium := &Video{Tier: TierPremium, ExternalPrice: 100000, IsPublished: true}
	assert.False(t, premium.Purchasable())

	unpriced := &Video{Tier: TierBasic, IsPublished: true}
	assert.False(t, unpriced.Purchasable())
}

func TestHasActiveStreamingSubscription(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	var nilUser *User
	assert.False(t, nilUser.HasActiveStreamingSubscription(now))

	notSubscribed := &User{}
	assert.False(t, notSubscribed.HasActiveStreamingSubscription(now))

	onTrial := &User{IsStreamingSubscriber: true, StreamingTrialEndsAt: &future}
	assert.True(t, onTrial.HasActiveStreamingSubscription(now))

	trialExpired := &User{IsStreamingSubscriber: true, StreamingTrialEndsAt: &past}
	assert.False(t, trialExpired.HasActiveStreamingSubscription(now))

	paid := &User{IsStreamingSubscriber: true, StreamingSubscriptionEndsAt: &future}
	assert.True(t, paid.HasActiveStreamingSubscription(now))

	flagOnlyNoDates := &User{IsStreamingSubscriber: true}
	assert.False(t, flagOnlyNoDates.HasActiveStreamingSubscription(now))
}

func TestCreatorShareOfPool(t *testing.T) {
	// 70% pool of $29 x 100 subscribers = 203000 cents
	pool := int64(203000)

	assert.Equal(t, int64(0), CreatorShareOfPool(pool, 0, 1000))
	assert.Equal(t, int64(0), CreatorShareOfPool(pool, 100, 0))
	assert.Equal(t, pool, CreatorShareOfPool(pool, 1000, 1000))

	// Floors: 203000 * 1 / 3 = 67666.66 -> 67666
	assert.Equal(t, int64(67666), CreatorShareOfPool(pool, 1, 3))

	// Sum over all creators never exceeds the pool
	a := CreatorShareOfPool(pool, 1, 3)
	b := CreatorShareOfPool(pool, 1, 3)
	c := CreatorShareOfPool(pool, 1, 3)
	assert.LessOrEqual(t, a+b+c, pool)
}
