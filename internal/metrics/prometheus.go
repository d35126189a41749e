package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidhimur_query_duration_seconds",
			Help:    "Pipeline processing duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"pipeline"},
	)

	QueryTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhimur_query_total",
			Help: "Total number of pipeline invocations",
		},
		[]string{"pipeline", "status"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhimur_cache_hits_total",
			Help: "Total cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhimur_cache_misses_total",
			Help: "Total cache misses",
		},
		[]string{"cache_type"},
	)

	CasesLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidhimur_cases_loaded",
			Help: "Number of enriched cases in the repository",
		},
	)

	ResultsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidhimur_results_returned",
			Help:    "Number of cases returned per query",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"pipeline"},
	)

	ClassifierCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhimur_classifier_calls_total",
			Help: "Total domain-classifier fallback invocations",
		},
		[]string{"status"},
	)
)

func Init() {
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(QueryTotal)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(CasesLoaded)
	prometheus.MustRegister(ResultsReturned)
	prometheus.MustRegister(ClassifierCalls)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
