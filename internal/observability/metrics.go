package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// normalization pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Per-source extraction metrics.
	ReadingsBySource *prometheus.CounterVec // labels: source
	FieldsExtracted  *prometheus.CounterVec // labels: source

	// Coordinate conversion metrics.
	CoordConversions *prometheus.CounterVec // labels: outcome={converted,dropped}

	// Region enrichment metrics.
	RegionRequests *prometheus.CounterVec   // labels: outcome={resolved,failed,empty}
	RegionCache    *prometheus.CounterVec   // labels: result={hit,miss}
	RegionDuration prometheus.Histogram
	RegionEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "messages_produced_total",
			Help:      "Total readings written to the sink.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "transform_errors_total",
			Help:      "Total transformation failures.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "korea_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "korea_etl",
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "korea_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ReadingsBySource: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "readings_by_source_total",
			Help:      "Normalized readings by upstream source.",
		}, []string{"source"}),
		FieldsExtracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "fields_extracted_total",
			Help:      "Successfully extracted fields by upstream source.",
		}, []string{"source"}),
		CoordConversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "coord_conversions_total",
			Help:      "Coordinate normalizations by outcome.",
		}, []string{"outcome"}),
		RegionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "region_requests_total",
			Help:      "Region resolution attempts by outcome.",
		}, []string{"outcome"}),
		RegionCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "korea_etl",
			Name:      "region_cache_total",
			Help:      "Region cache lookups by result.",
		}, []string{"result"}),
		RegionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "korea_etl",
			Name:      "region_api_duration_seconds",
			Help:      "KakaoMap region API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		RegionEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "korea_etl",
			Name:      "region_enabled",
			Help:      "1 when region enrichment is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ReadingsBySource,
		m.FieldsExtracted,
		m.CoordConversions,
		m.RegionRequests,
		m.RegionCache,
		m.RegionDuration,
		m.RegionEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		MessagesConsumed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "korea_etl", Name: "messages_consumed_total"}),
		MessagesProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "korea_etl", Name: "messages_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "korea_etl", Name: "transform_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "korea_etl", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "korea_etl", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "korea_etl", Name: "batch_processing_duration_seconds"}),
		ReadingsBySource:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "korea_etl", Name: "readings_by_source_total"}, []string{"source"}),
		FieldsExtracted:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "korea_etl", Name: "fields_extracted_total"}, []string{"source"}),
		CoordConversions:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "korea_etl", Name: "coord_conversions_total"}, []string{"outcome"}),
		RegionRequests:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "korea_etl", Name: "region_requests_total"}, []string{"outcome"}),
		RegionCache:             prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "korea_etl", Name: "region_cache_total"}, []string{"result"}),
		RegionDuration:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "korea_etl", Name: "region_api_duration_seconds"}),
		RegionEnabled:           prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "korea_etl", Name: "region_enabled"}),
	}
}
