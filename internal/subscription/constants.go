package subscription

// TrialMonths is the free trial granted when a streaming subscription
// is first activated.
const TrialMonths = 1

// Log Messages
const (
	LogMsgSubscriptionActivated = "Streaming subscription activated"
	LogMsgSubscriptionCanceled  = "Streaming subscription canceled"
	LogMsgAlreadySubscribed     = "Streaming subscription already active"
	LogMsgFailedToPublishEvent  = "Failed to publish subscription event"
)
