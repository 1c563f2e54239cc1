package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adcreative"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	RedisErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "errors_total",
			Help:      "Total number of Redis command errors",
		},
		[]string{"command"},
	)

	externalRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "integrator",
			Name:      "requests_total",
			Help:      "Total number of requests to third-party providers",
		},
		[]string{"provider", "operation", "status"},
	)

	externalRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "integrator",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests to third-party providers",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "operation"},
	)

	adVariationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "creative",
			Name:      "ad_variations_generated_total",
			Help:      "Total number of ad variations generated",
		},
		[]string{"platform"},
	)

	postsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "creative",
			Name:      "posts_published_total",
			Help:      "Total number of publishing attempts by platform and result",
		},
		[]string{"platform", "success"},
	)

	schedulerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Total number of scheduler job runs",
		},
		[]string{"job", "status"},
	)
)

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordExternalRequest registra uma chamada a um provedor externo
func RecordExternalRequest(provider, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	externalRequestsTotal.WithLabelValues(provider, operation, status).Inc()
	externalRequestDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

func RecordAdVariationGenerated(platform string) {
	adVariationsGenerated.WithLabelValues(platform).Inc()
}

func RecordPostPublished(platform string, success bool) {
	postsPublished.WithLabelValues(platform, strconv.FormatBool(success)).Inc()
}

func RecordSchedulerRun(job string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerRuns.WithLabelValues(job, status).Inc()
}
