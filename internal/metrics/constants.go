package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePurchasesSettled     = "purchases_settled_total"
	MetricNameDuplicateSettlements = "duplicate_settlements_ignored_total"
	MetricNameSettlementsRejected  = "settlements_rejected_total"
	MetricNameRevenueCents         = "revenue_cents_total"
	MetricNamePurchasesInitiated   = "purchases_initiated_total"
	MetricNameAccessChecks         = "entitlement_checks_total"
	MetricNameRoyaltiesDistributed = "royalties_distributed_cents_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPurchasesSettled     = "Total number of purchases settled into the ledger"
	HelpTextDuplicateSettlements = "Total number of duplicate settlement notifications ignored"
	HelpTextSettlementsRejected  = "Total number of settlement events rejected before the ledger"
	HelpTextRevenueCents         = "Total settled revenue in cents, by share"
	HelpTextPurchasesInitiated   = "Total number of payment intents created"
	HelpTextAccessChecks         = "Total number of entitlement checks, by outcome"
	HelpTextRoyaltiesDistributed = "Total streaming royalties distributed in cents"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelTier    = "tier"
	LabelShare   = "share"
	LabelReason  = "reason"
	LabelOutcome = "outcome"
)

// Label values for the revenue share dimension
const (
	ShareCreator  = "creator"
	SharePlatform = "platform"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
