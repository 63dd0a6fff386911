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

// Business Metrics
var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsTotal,
			Help: HelpTextResolutionsTotal,
		},
		[]string{LabelMode, LabelContext},
	)

	FleeAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFleeAttemptsTotal,
			Help: HelpTextFleeAttemptsTotal,
		},
		[]string{LabelOutcome},
	)

	ElixirsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameElixirsConsumed,
			Help: HelpTextElixirsConsumed,
		},
		[]string{LabelContext},
	)

	ElixirsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameElixirsSkipped,
			Help: HelpTextElixirsSkipped,
		},
		[]string{LabelContext},
	)

	EncountersRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersRolled,
			Help: HelpTextEncountersRolled,
		},
		[]string{LabelMode, LabelTier},
	)

	LootPoolsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootPoolsBuilt,
			Help: HelpTextLootPoolsBuilt,
		},
		[]string{LabelJob},
	)

	FinalValueObserved = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameFinalValueObserved,
			Help:    HelpTextFinalValueObserved,
			Buckets: FinalValueBuckets,
		},
		[]string{LabelMode},
	)
)
