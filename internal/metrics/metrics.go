// Package metrics exposes the Prometheus collectors scraped from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "page_quiz"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	// QuizGenerationTotal counts generate calls by outcome code ("success" or an error code).
	QuizGenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "generation_total",
			Help:      "Total number of quiz generations",
		},
		[]string{"difficulty", "language", "status"},
	)

	QuizGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "generation_duration_seconds",
			Help:      "End-to-end quiz generation duration in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120},
		},
		[]string{"status"},
	)

	PageFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scraper",
			Name:      "fetch_total",
			Help:      "Total number of page fetches",
		},
		[]string{"outcome"}, // ok, http_error, timeout, error
	)

	QuizEvaluationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "evaluation_total",
			Help:      "Total number of scored answer sheets",
		},
		[]string{"level"},
	)
)

// RecordQuizGeneration records a finished generate call.
func RecordQuizGeneration(difficulty, language, status string, seconds float64) {
	QuizGenerationTotal.WithLabelValues(difficulty, language, status).Inc()
	QuizGenerationDuration.WithLabelValues(status).Observe(seconds)
}

// RecordPageFetch records one fetch outcome.
func RecordPageFetch(outcome string) {
	PageFetchTotal.WithLabelValues(outcome).Inc()
}

// RecordEvaluation records a scored answer sheet.
func RecordEvaluation(level string) {
	QuizEvaluationTotal.WithLabelValues(level).Inc()
}
