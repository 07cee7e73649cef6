package bootstrap

import "time"

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// Event system defaults, used when the config leaves a value unset
const (
	EventDefaultMaxRetries     = 3
	EventDefaultRetryDelay     = 5 * time.Second
	EventDefaultDeadLetterPath = "data/events/dead_letter.jsonl"
)

// Event log retention defaults
const (
	// EventLogDefaultRetentionDays is how long persisted events are kept
	EventLogDefaultRetentionDays = 90

	// EventLogCleanupInterval is how often the retention job runs
	EventLogCleanupInterval = 24 * time.Hour
)

// Log messages
const (
	LogMsgEventSystemInitialized  = "Event system initialized"
	LogMsgEventLoggerInitialized  = "Event logger subscribed"
	LogMsgShuttingDownServer      = "Shutting down server..."
	LogMsgServerForcedShutdown    = "Server forced to shutdown"
	LogMsgShuttingDownScheduler   = "Shutting down scheduler and worker pool..."
	LogMsgShuttingDownPublisher   = "Shutting down event publisher..."
	LogMsgPublisherShutdownFailed = "Event publisher shutdown failed"
	LogMsgServerStopped           = "Server stopped"
	LogMsgCatalogSeeded           = "Catalog defaults ensured"
)

// Error messages
const (
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
	ErrMsgFailedSeedCatalog          = "failed to seed default categories"
)
