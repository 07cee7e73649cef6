package domain

import "fmt"

// Tier determines how a video is monetized and which settlement path applies.
type Tier string

const (
	// TierStreaming videos carry no direct price; access comes with the
	// monthly streaming subscription and creators are paid watch-time
	// royalties from the subscription pool.
	TierStreaming Tier = "streaming"
	// TierBasic videos are priced in minor currency units and settled
	// through the platform payment gateway.
	TierBasic Tier = "basic"
	// TierPremium videos are sold through the creator's own external
	// payment URL and are never charged through the platform.
	TierPremium Tier = "premium"
)

// ParseTier converts a stored tier tag into a Tier, rejecting unknown values.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierStreaming, TierBasic, TierPremium:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTierUnknown, s)
	}
}

// Valid reports whether the tier is one of the known monetization tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierStreaming, TierBasic, TierPremium:
		return true
	}
	return false
}

// PlatformSettled reports whether purchases of this tier are settled by
// the platform settlement engine.
func (t Tier) PlatformSettled() bool {
	return t == TierBasic
}
