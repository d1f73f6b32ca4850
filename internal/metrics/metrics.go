package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/StounhandJ/video_helper/internal/platform"
)

// Metrics держит собственный реестр, чтобы тесты не делили глобальный
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	platformsTotal      *prometheus.CounterVec
	mismatchesTotal     prometheus.Counter
	relayBytesTotal     prometheus.Counter
	upstreamErrorsTotal *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests made.",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		platformsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_detections_total",
				Help: "Classified video links by platform.",
			},
			[]string{"platform"},
		),
		mismatchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "platform_mismatches_total",
				Help: "Requests where the client platform differs from the detected one.",
			},
		),
		relayBytesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "relay_bytes_total",
				Help: "Bytes streamed from upstream by the download relay.",
			},
		),
		upstreamErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_upstream_errors_total",
				Help: "Failed or non-200 upstream fetches of the download relay.",
			},
			[]string{"reason"},
		),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.platformsTotal,
		m.mismatchesTotal,
		m.relayBytesTotal,
		m.upstreamErrorsTotal,
	)

	// нули для всех платформ, чтобы серии были видны сразу
	for _, p := range append(platform.All(), platform.Unknown) {
		m.platformsTotal.WithLabelValues(p.String())
	}

	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) Detected(p platform.Platform) {
	m.platformsTotal.WithLabelValues(p.String()).Inc()
}

func (m *Metrics) Mismatch() {
	m.mismatchesTotal.Inc()
}

func (m *Metrics) RelayBytes(n int) {
	m.relayBytesTotal.Add(float64(n))
}

// UpstreamError - reason это "fetch" или код ответа
func (m *Metrics) UpstreamError(reason string) {
	m.upstreamErrorsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдаёт /metrics через адаптер net/http -> fasthttp
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
