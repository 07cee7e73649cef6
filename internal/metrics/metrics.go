package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PurchasesSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesSettled,
			Help: HelpTextPurchasesSettled,
		},
		[]string{LabelTier},
	)

	DuplicateSettlements = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateSettlements,
			Help: HelpTextDuplicateSettlements,
		},
	)

	SettlementsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSettlementsRejected,
			Help: HelpTextSettlementsRejected,
		},
		[]string{LabelReason},
	)

	RevenueCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRevenueCents,
			Help: HelpTextRevenueCents,
		},
		[]string{LabelShare},
	)

	PurchasesInitiated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesInitiated,
			Help: HelpTextPurchasesInitiated,
		},
	)

	AccessChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAccessChecks,
			Help: HelpTextAccessChecks,
		},
		[]string{LabelOutcome},
	)

	RoyaltiesDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoyaltiesDistributed,
			Help: HelpTextRoyaltiesDistributed,
		},
	)
)
