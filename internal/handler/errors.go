package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingIdentity   = "Missing identity header"
	ErrMsgInvalidVideoID    = "Invalid video ID"
	ErrMsgInvalidCategoryID = "Invalid category ID"
	ErrMsgInvalidCommentID  = "Invalid comment ID"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Webhook error messages
	ErrMsgInvalidSignature = "Invalid webhook signature"
	ErrMsgUnreadableBody   = "Unreadable request body"

	// Purchase operation error messages
	ErrMsgInitiatePurchaseFailed = "Failed to initiate purchase"
	ErrMsgSettlementFailed       = "Failed to settle payment"
	ErrMsgExternalRecordFailed   = "Failed to record external purchase"
	ErrMsgGetPurchasesFailed     = "Failed to get purchases"

	// Entitlement error messages
	ErrMsgAccessCheckFailed = "Failed to check access"

	// Earnings error messages
	ErrMsgGetEarningsFailed  = "Failed to get earnings"
	ErrMsgGetStatsFailed     = "Failed to get creator stats"
	ErrMsgGetRoyaltiesFailed = "Failed to get royalties"

	// Subscription error messages
	ErrMsgSubscribeFailed   = "Failed to activate streaming subscription"
	ErrMsgUnsubscribeFailed = "Failed to cancel streaming subscription"

	// Catalog error messages
	ErrMsgGetCategoriesFailed = "Failed to get categories"
	ErrMsgGetVideosFailed     = "Failed to get videos"
	ErrMsgSearchFailed        = "Failed to search videos"
	ErrMsgCreateVideoFailed   = "Failed to create video"
	ErrMsgUpdateVideoFailed   = "Failed to update video"
	ErrMsgDeleteVideoFailed   = "Failed to delete video"
	ErrMsgPublishVideoFailed  = "Failed to change publish state"
	ErrMsgRecordViewFailed    = "Failed to record view"

	// Engagement error messages
	ErrMsgRecordWatchFailed  = "Failed to record watch time"
	ErrMsgReactionFailed     = "Failed to save reaction"
	ErrMsgFavoriteFailed     = "Failed to update favorites"
	ErrMsgGetFavoritesFailed = "Failed to get favorites"
	ErrMsgCommentFailed      = "Failed to save comment"
	ErrMsgGetCommentsFailed  = "Failed to get comments"
)

// Success messages for API responses
const (
	MsgSettlementAccepted   = "Payment settled"
	MsgExternalRecorded     = "External purchase recorded"
	MsgSubscriptionActive   = "Streaming subscription active"
	MsgSubscriptionCanceled = "Streaming subscription canceled"
	MsgViewRecorded         = "View recorded"
	MsgWatchRecorded        = "Watch time recorded"
	MsgReactionSaved        = "Reaction saved"
	MsgReactionRemoved      = "Reaction removed"
	MsgFavoriteAdded        = "Added to favorites"
	MsgFavoriteRemoved      = "Removed from favorites"
	MsgCommentDeleted       = "Comment deleted"
	MsgVideoDeleted         = "Video deleted"
)
