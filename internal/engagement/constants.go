package engagement

// Watch history limits
const (
	DefaultHistoryLimit = 50
	MaxWatchSeconds     = 24 * 60 * 60
	MaxCommentLength    = 2000
)

// Error Messages
const (
	ErrMsgWatchSecondsInvalid = "watch seconds out of range"
	ErrMsgCommentEmpty        = "comment content is empty"
	ErrMsgCommentTooLong      = "comment content too long"
	ErrMsgParentMismatch      = "parent comment belongs to another video"
)

// Log Messages
const (
	LogMsgWatchRecorded  = "Watch time recorded"
	LogMsgWatchDenied    = "Watch time rejected, no entitlement"
	LogMsgCommentAdded   = "Comment added"
	LogMsgCommentDeleted = "Comment deleted"
)
