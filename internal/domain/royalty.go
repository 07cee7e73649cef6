package domain

import "time"

// RoyaltyPeriod aggregates one creator's watch time on one streaming
// video for one month (YYYY-MM) and the royalty computed from it.
// Derived from watch history, independent of individual ledger rows.
type RoyaltyPeriod struct {
	ID              int64     `json:"id" db:"royalty_id"`
	CreatorID       string    `json:"creator_id" db:"creator_id"`
	VideoID         int       `json:"video_id" db:"video_id"`
	Month           string    `json:"month" db:"month"` // YYYY-MM
	WatchMinutes    int64     `json:"watch_minutes" db:"watch_minutes"`
	RoyaltyEarnings int64     `json:"royalty_earnings" db:"royalty_earnings"` // cents
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreatorShareOfPool computes a creator's slice of the monthly royalty
// pool: poolCents * creatorMinutes / totalMinutes, floored. The
// remainder after all creators are paid stays with the platform, so the
// distribution never exceeds the pool.
func CreatorShareOfPool(poolCents, creatorMinutes, totalMinutes int64) int64 {
	if totalMinutes <= 0 || creatorMinutes <= 0 || poolCents <= 0 {
		return 0
	}
	return poolCents * creatorMinutes / totalMinutes
}
