package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "coldstorage_"

	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultSkipped = "skipped"
)

var (
	registerOnce sync.Once

	ingestCycles      *prometheus.CounterVec
	ingestLatency     *prometheus.HistogramVec
	readingsStored    prometheus.Counter
	feedFetchFailures prometheus.Counter
)

// Init registers the pipeline metrics. Safe to call more than once; the
// helpers below are no-ops until it runs.
func Init() {
	registerOnce.Do(func() {
		ingestCycles = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ingest_cycles_total",
				Help: "Total ingestion cycles by result",
			},
			[]string{"result"},
		)
		ingestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ingest_cycle_latency_seconds",
				Help:    "Ingestion cycle latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		readingsStored = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "readings_stored_total",
				Help: "Total readings appended to the store",
			},
		)
		feedFetchFailures = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "feed_fetch_failures_total",
				Help: "Total failed feed fetches",
			},
		)

		prometheus.MustRegister(
			ingestCycles,
			ingestLatency,
			readingsStored,
			feedFetchFailures,
		)
	})
}

// ObserveIngestCycle records one cycle outcome and its duration.
func ObserveIngestCycle(result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if ingestCycles != nil {
		ingestCycles.WithLabelValues(result).Inc()
	}
	if ingestLatency != nil {
		ingestLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// AddReadingsStored increments the stored-readings counter by count.
func AddReadingsStored(count int) {
	if count <= 0 {
		return
	}
	if readingsStored != nil {
		readingsStored.Add(float64(count))
	}
}

// IncFeedFetchFailure increments the failed-fetch counter.
func IncFeedFetchFailure() {
	if feedFetchFailures != nil {
		feedFetchFailures.Inc()
	}
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
