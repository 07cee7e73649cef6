package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToGetUser         = "failed to get user"
	ErrMsgFailedToUpsertUser      = "failed to upsert user"
	ErrMsgFailedToUpdateStreaming = "failed to update streaming subscription"
	ErrMsgFailedToCountSubs       = "failed to count streaming subscribers"
	ErrMsgFailedToUpdateEarnings  = "failed to update total earnings"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToQueryCategories    = "failed to query categories"
	ErrMsgFailedToGetCategory        = "failed to get category"
	ErrMsgFailedToInsertCategory     = "failed to insert category"
	ErrMsgFailedToQuerySubcategories = "failed to query subcategories"
	ErrMsgFailedToInsertSubcategory  = "failed to insert subcategory"
	ErrMsgFailedToGetVideo           = "failed to get video"
	ErrMsgFailedToQueryVideos        = "failed to query videos"
	ErrMsgFailedToInsertVideo        = "failed to insert video"
	ErrMsgFailedToUpdateVideo        = "failed to update video"
	ErrMsgFailedToDeleteVideo        = "failed to delete video"
	ErrMsgFailedToIncrementViews     = "failed to increment views"
	ErrMsgFailedToRecountPurchases   = "failed to recount purchases"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToInsertPurchase    = "failed to insert purchase"
	ErrMsgFailedToBumpPurchaseCount = "failed to bump purchase counter"
	ErrMsgFailedToGetPurchase       = "failed to get purchase"
	ErrMsgFailedToQueryPurchases    = "failed to query purchases"
	ErrMsgFailedToSumEarnings       = "failed to sum creator earnings"
	ErrMsgFailedToFoldEarnings      = "failed to fold earnings"
)

// Error Messages - Engagement Operations
const (
	ErrMsgFailedToRecordWatch       = "failed to record watch entry"
	ErrMsgFailedToQueryWatchHistory = "failed to query watch history"
	ErrMsgFailedToSetReaction       = "failed to set reaction"
	ErrMsgFailedToRemoveReaction    = "failed to remove reaction"
	ErrMsgFailedToAddFavorite       = "failed to add favorite"
	ErrMsgFailedToRemoveFavorite    = "failed to remove favorite"
	ErrMsgFailedToQueryFavorites    = "failed to query favorites"
	ErrMsgFailedToInsertComment     = "failed to insert comment"
	ErrMsgFailedToQueryComments     = "failed to query comments"
	ErrMsgFailedToDeleteComment     = "failed to delete comment"
	ErrMsgFailedToFoldWatchMinutes  = "failed to fold watch minutes"
)

// Error Messages - Royalty Operations
const (
	ErrMsgFailedToUpsertRoyalty   = "failed to upsert royalty period"
	ErrMsgFailedToQueryRoyalties  = "failed to query royalties"
)
