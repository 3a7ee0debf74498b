// Package metrics contains the Prometheus instrumentation for the assistant.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors. Registering on an injected
// Registerer keeps tests from colliding on the default registry.
type Metrics struct {
	// Analysis metrics
	AnalysisRequests  prometheus.Counter
	AnalysisFailures  prometheus.Counter
	ModelAttempts     *prometheus.CounterVec
	AnalysisDuration  prometheus.Histogram
	RecordingLoudness prometheus.Histogram

	// Notification metrics
	SlackPosts    prometheus.Counter
	SlackFailures *prometheus.CounterVec

	// HTTP surface metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AnalysisRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "assistant_analysis_requests_total",
			Help: "Total number of analysis requests started",
		}),
		AnalysisFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "assistant_analysis_failures_total",
			Help: "Total number of analysis requests that exhausted all candidate models",
		}),
		ModelAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_model_attempts_total",
			Help: "Candidate model call attempts by model and outcome",
		}, []string{"model", "outcome"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "assistant_analysis_duration_seconds",
			Help:    "End-to-end duration of analysis requests",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		RecordingLoudness: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "assistant_recording_rms",
			Help:    "RMS loudness of checked recordings",
			Buckets: []float64{1, 5, 15, 50, 200, 1000, 5000},
		}),
		SlackPosts: factory.NewCounter(prometheus.CounterOpts{
			Name: "assistant_slack_posts_total",
			Help: "Total number of Slack notifications attempted",
		}),
		SlackFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_slack_failures_total",
			Help: "Slack notification failures by API error",
		}, []string{"error"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "assistant_http_requests_total",
			Help: "HTTP requests by method, endpoint and status code",
		}, []string{"method", "endpoint", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "assistant_http_request_duration_seconds",
			Help:    "HTTP request duration by endpoint",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
