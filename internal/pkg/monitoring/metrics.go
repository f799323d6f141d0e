package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eco_travel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"method", "route"},
	)

	// Evaluation metrics
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_evaluations_total",
			Help: "Total number of trip evaluations",
		},
		[]string{"source", "status"},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eco_travel_evaluation_duration_seconds",
			Help:    "Trip evaluation duration in seconds, cache lookups included",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"source"},
	)

	RecommendedTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_recommended_tier_total",
			Help: "Eco tier awarded to evaluated plans",
		},
		[]string{"tier"},
	)

	CO2SavedKg = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eco_travel_co2_saved_kg_total",
			Help: "Sum of positive CO2 savings suggested by recommendations, kg",
		},
	)

	// Cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// Rate limiting
	RateLimitExceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_rate_limit_exceeded_total",
			Help: "Total number of rejected requests due to rate limiting",
		},
		[]string{"route"},
	)

	// Worker metrics
	StreamMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_stream_messages_total",
			Help: "Stream messages processed by the evaluation worker",
		},
		[]string{"stream", "status"},
	)

	// Account metrics
	AccountOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_account_operations_total",
			Help: "Account store operations",
		},
		[]string{"operation", "status"},
	)

	// Errors
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_travel_errors_total",
			Help: "Total number of errors by component and type",
		},
		[]string{"component", "error_type"},
	)
)

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordEvaluation - source: "computed" или "cache"
func RecordEvaluation(source string, duration time.Duration, success bool) {
	EvaluationsTotal.WithLabelValues(source, statusLabel(success)).Inc()
	EvaluationDuration.WithLabelValues(source).Observe(duration.Seconds())
}

func RecordRecommendation(tier string, co2SavedKg float64) {
	RecommendedTier.WithLabelValues(tier).Inc()
	if co2SavedKg > 0 {
		CO2SavedKg.Add(co2SavedKg)
	}
}

func RecordCacheHit(cacheType string) {
	CacheHits.WithLabelValues(cacheType).Inc()
}

func RecordCacheMiss(cacheType string) {
	CacheMisses.WithLabelValues(cacheType).Inc()
}

func RecordRateLimitExceeded(route string) {
	RateLimitExceeded.WithLabelValues(route).Inc()
}

func RecordStreamMessage(stream string, success bool) {
	StreamMessagesTotal.WithLabelValues(stream, statusLabel(success)).Inc()
}

func RecordAccountOperation(operation string, success bool) {
	AccountOperationsTotal.WithLabelValues(operation, statusLabel(success)).Inc()
}

func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
