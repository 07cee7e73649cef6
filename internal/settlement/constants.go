package settlement

// Revenue split for platform-settled (basic tier) purchases
const (
	// CreatorSharePercent of the sale price goes to the creator, floored
	// to a whole cent. The platform keeps the remainder, so the two
	// shares always sum to the exact price.
	CreatorSharePercent = 80
)

// Rejection reasons reported on the settlements_rejected metric
const (
	RejectReasonInvalidEvent  = "invalid_event"
	RejectReasonVideoNotFound = "video_not_found"
	RejectReasonUnpublished   = "unpublished"
	RejectReasonWrongTier     = "wrong_tier"
	RejectReasonNoPrice       = "no_price"
)

// Log Messages
const (
	LogMsgPurchaseInitiated     = "Purchase initiated"
	LogMsgPurchaseSettled       = "Purchase settled"
	LogMsgDuplicateSettlement   = "Duplicate settlement ignored"
	LogMsgExternalPurchase      = "External purchase recorded"
	LogMsgSettlementRejected    = "Settlement rejected"
	LogMsgFailedToPublishEvent  = "Failed to publish settlement event"
)
