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

// Preview Cache Metrics
var (
	PreviewCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreviewCacheHits,
			Help: HelpTextPreviewCacheHits,
		},
	)

	PreviewCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreviewCacheMisses,
			Help: HelpTextPreviewCacheMisses,
		},
	)

	PreviewCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreviewCacheEvictions,
			Help: HelpTextPreviewCacheEvictions,
		},
	)

	PreviewDecodeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePreviewDecodeFailures,
			Help: HelpTextPreviewDecodeFailures,
		},
	)

	PreviewDecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePreviewDecodeDuration,
			Help:    HelpTextPreviewDecodeDuration,
			Buckets: DecodeLatencyBuckets,
		},
	)

	PreviewCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePreviewCacheEntries,
			Help: HelpTextPreviewCacheEntries,
		},
	)
)

// File Operation Metrics
var (
	FileOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFileOpsTotal,
			Help: HelpTextFileOpsTotal,
		},
		[]string{LabelOperation, LabelStatus},
	)

	BatchItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBatchItemsTotal,
			Help: HelpTextBatchItemsTotal,
		},
		[]string{LabelOperation, LabelStatus},
	)

	BatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBatchDuration,
			Help:    HelpTextBatchDuration,
			Buckets: BatchLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	BatchesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBatchesInFlight,
			Help: HelpTextBatchesInFlight,
		},
	)
)

// RecordFileOp counts one file-system operation.
func RecordFileOp(op string, err error) {
	FileOpsTotal.WithLabelValues(op, statusOf(err)).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
