package catalog

// Listing defaults
const (
	DefaultListLimit     = 50
	DefaultTrendingLimit = 20
	MaxListLimit         = 200
)

// Error Messages
const (
	ErrMsgTitleRequired      = "title is required"
	ErrMsgVideoURLRequired   = "video URL is required"
	ErrMsgSlugRequired       = "slug is required"
	ErrMsgNameRequired       = "name is required"
	ErrMsgNotVideoOwner      = "video belongs to another creator"
	ErrMsgPriceOnBasicOnly   = "platform price is only valid on the basic tier"
	ErrMsgExternalURLMissing = "premium tier requires an external payment URL"
	ErrMsgFailedToGetVideo   = "failed to get video"
	ErrMsgFailedToSaveVideo  = "failed to save video"
)

// Log Messages
const (
	LogMsgVideoCreated      = "Video created"
	LogMsgVideoUpdated      = "Video updated"
	LogMsgVideoDeleted      = "Video deleted"
	LogMsgVideoPublished    = "Video publish state changed"
	LogMsgCategorySeeded    = "Default category created"
	LogMsgFailedToLogView   = "Failed to publish view event"
)
