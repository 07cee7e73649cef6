package royalty

// Pool parameters for the monthly streaming royalty distribution
const (
	// RoyaltyPoolPercent of gross subscription revenue is shared with
	// creators, weighted by watch minutes. The rest covers the platform.
	RoyaltyPoolPercent = 70
)

// Log Messages
const (
	LogMsgDistributionStarted  = "Royalty distribution started"
	LogMsgDistributionFinished = "Royalty distribution finished"
	LogMsgNoWatchTime          = "No eligible watch time, nothing to distribute"
	LogMsgFailedToPublishEvent = "Failed to publish royalty event"
)
