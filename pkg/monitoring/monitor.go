package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	TransportRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mock_transport_requests_total",
			Help: "Simulated transport calls by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	WizardSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "profile_wizard_submissions_total",
			Help: "Profile wizard submissions by result (invalid, succeeded, failed, discarded)",
		},
		[]string{"result"},
	)

	AdvisorSocketMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_ws_messages_total",
			Help: "Advisor websocket messages by type and direction",
		},
		[]string{"type", "direction"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(TransportRequests)
		prometheus.MustRegister(WizardSubmissions)
		prometheus.MustRegister(AdvisorSocketMessages)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
