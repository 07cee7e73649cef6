package domain

// Event type tags published on the in-process bus and persisted by the
// event log.
const (
	EventTypePurchaseSettled       = "purchase.settled"
	EventTypePurchaseDuplicate     = "purchase.duplicate_ignored"
	EventTypeExternalPurchase      = "purchase.external_recorded"
	EventTypeVideoViewed           = "video.viewed"
	EventTypeSubscriptionActivated = "subscription.activated"
	EventTypeRoyaltyDistributed    = "royalty.distributed"
)
