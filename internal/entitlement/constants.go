package entitlement

import "time"

// Access cache sizing. Grants are cheap to hold and hot videos get hit
// constantly from the player, so the cache is generous.
const (
	DefaultCacheSize = 10000
	DefaultCacheTTL  = 5 * time.Minute
)

// Outcome labels for the access check metric
const (
	OutcomeGranted = "granted"
	OutcomeDenied  = "denied"
)

// Log Messages
const (
	LogMsgAccessDenied = "Access denied"
)
