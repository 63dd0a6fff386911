package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameResolutionsTotal   = "resolutions_total"
	MetricNameFleeAttemptsTotal  = "flee_attempts_total"
	MetricNameElixirsConsumed    = "elixirs_consumed_total"
	MetricNameElixirsSkipped     = "elixirs_skipped_total"
	MetricNameEncountersRolled   = "encounters_rolled_total"
	MetricNameLootPoolsBuilt     = "loot_pools_built_total"
	MetricNameFinalValueObserved = "final_value"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextResolutionsTotal   = "Total number of final-value resolutions"
	HelpTextFleeAttemptsTotal  = "Total number of flee resolutions by outcome"
	HelpTextElixirsConsumed    = "Total number of buffs consumed during resolution"
	HelpTextElixirsSkipped     = "Total number of active buffs skipped on context mismatch"
	HelpTextEncountersRolled   = "Total number of encounter tier rolls"
	HelpTextLootPoolsBuilt     = "Total number of weighted loot pools built"
	HelpTextFinalValueObserved = "Distribution of adjusted final values"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMode    = "mode"
	LabelContext = "context"
	LabelOutcome = "outcome"
	LabelTier    = "tier"
	LabelJob     = "job"
)

// HTTPLatencyBuckets are the histogram buckets for request duration.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// FinalValueBuckets cover the bounded [1,100] resolution range.
var FinalValueBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
