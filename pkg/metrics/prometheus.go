package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes swap pipeline metrics via Prometheus.
type Recorder struct {
	quotesTotal    *prometheus.CounterVec
	cacheHits      prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	observations   prometheus.Gauge
	quarters       prometheus.Gauge
	quoteDuration  prometheus.Histogram
	windowSize     prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		quotesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swapdesk_quotes_total",
				Help: "Total number of swap quotes computed",
			},
			[]string{"result"},
		),
		cacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "swapdesk_quote_cache_hits_total",
				Help: "Total number of quote cache hits",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swapdesk_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		observations: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "swapdesk_rate_observations",
				Help: "Number of rate observations loaded at startup",
			},
		),
		quarters: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "swapdesk_quarters",
				Help: "Number of quarterly entries derived from the rate series",
			},
		),
		quoteDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "swapdesk_quote_duration_seconds",
				Help:    "Duration of quote computation in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		windowSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "swapdesk_contract_window_quarters",
				Help:    "Number of quarters selected by the contract window",
				Buckets: []float64{0, 4, 8, 12, 16, 20, 28, 36, 44},
			},
		),
	}
}

// RecordQuote records a computed quote with its outcome label.
func (r *Recorder) RecordQuote(result string) {
	r.quotesTotal.WithLabelValues(result).Inc()
}

// RecordCacheHit records a quote served from cache.
func (r *Recorder) RecordCacheHit() {
	r.cacheHits.Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordSeriesSize records the loaded series dimensions.
func (r *Recorder) RecordSeriesSize(observations, quarters int) {
	r.observations.Set(float64(observations))
	r.quarters.Set(float64(quarters))
}

// RecordQuoteDuration records quote computation latency in seconds.
func (r *Recorder) RecordQuoteDuration(seconds float64) {
	r.quoteDuration.Observe(seconds)
}

// RecordWindowSize records how many quarters a contract window selected.
func (r *Recorder) RecordWindowSize(n int) {
	r.windowSize.Observe(float64(n))
}
