package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// requestDurationBuckets spans 5ms to 5s, matching the latency range of a
// handler doing one or two database round-trips.
var requestDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
}

// New builds a Metrics instance backed by its own registry. The default
// Go and process collectors are registered under the given namespace
// prefix; the HTTP histogram keeps its canonical unprefixed name.
func New(namespace string) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	prefixed := prometheus.WrapRegistererWithPrefix(namespace+"_", registry)
	if err := prefixed.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := prefixed.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: requestDurationBuckets,
	}, []string{"method", "route", "status_code"})
	if err := registry.Register(requestDuration); err != nil {
		return nil, err
	}

	return &Metrics{
		registry:        registry,
		requestDuration: requestDuration,
	}, nil
}

// NewMock creates a Metrics instance with a throwaway registry for testing
func NewMock() *Metrics {
	m, err := New("test")
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) ObserveRequest(method, route, statusCode string, seconds float64) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, statusCode).Observe(seconds)
}

// Handler returns the scrape endpoint in the Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry so tests can Gather directly.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterRoutes mounts the scrape endpoint on both published paths.
func (m *Metrics) RegisterRoutes(router gin.IRouter) {
	handler := gin.WrapH(m.Handler())
	router.GET("/metrics", handler)
	router.GET("/api/metrics", handler)
}
