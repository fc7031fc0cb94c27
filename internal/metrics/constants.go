package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names (metrics endpoint)
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Preview cache metric names
const (
	MetricNamePreviewCacheHits      = "preview_cache_hits_total"
	MetricNamePreviewCacheMisses    = "preview_cache_misses_total"
	MetricNamePreviewCacheEvictions = "preview_cache_evictions_total"
	MetricNamePreviewDecodeFailures = "preview_decode_failures_total"
	MetricNamePreviewDecodeDuration = "preview_decode_duration_seconds"
	MetricNamePreviewCacheEntries   = "preview_cache_entries"
)

// File operation metric names
const (
	MetricNameFileOpsTotal    = "file_operations_total"
	MetricNameBatchItemsTotal = "batch_items_total"
	MetricNameBatchDuration   = "batch_duration_seconds"
	MetricNameBatchesInFlight = "batches_in_flight"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextPreviewCacheHits      = "Total number of preview cache hits"
	HelpTextPreviewCacheMisses    = "Total number of preview cache misses"
	HelpTextPreviewCacheEvictions = "Total number of preview entries evicted"
	HelpTextPreviewDecodeFailures = "Total number of preview decodes that produced no surface"
	HelpTextPreviewDecodeDuration = "Preview decode latency in seconds"
	HelpTextPreviewCacheEntries   = "Current number of cached preview entries across all preview caches"
)

const (
	HelpTextFileOpsTotal    = "Total number of file operations by operation and status"
	HelpTextBatchItemsTotal = "Total number of batch items processed by operation and status"
	HelpTextBatchDuration   = "Batch run latency in seconds"
	HelpTextBatchesInFlight = "Current number of running batches"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
)

// Label values
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets covers scrape latencies
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// DecodeLatencyBuckets covers thumbnail decodes up to full-size raw previews
var DecodeLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// BatchLatencyBuckets covers batches from a handful to thousands of files
var BatchLatencyBuckets = []float64{.01, .1, .5, 1, 5, 10, 30, 60, 300}
