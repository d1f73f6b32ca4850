package handlers

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"golang.org/x/time/rate"

	"github.com/StounhandJ/video_helper/internal/config"
	"github.com/StounhandJ/video_helper/internal/intake"
	"github.com/StounhandJ/video_helper/internal/metrics"
)

const (
	routeInfo     = "/"
	routeRequest  = "/api/request"
	routeDownload = intake.DirectDownloadPath
	routeMetrics  = "/metrics"
	routeApp      = "/app"
	routeOther    = "other"
)

type handler struct {
	service *intake.Service
	client  *http.Client
	metrics *metrics.Metrics

	proxy          config.Proxy
	allowedOrigins []string
	limiter        *rate.Limiter

	static        fasthttp.RequestHandler
	exportMetrics fasthttp.RequestHandler
}

// NewHandler собирает HTTP обработчики. static может быть nil, тогда /app/ отдаёт 404
func NewHandler(cfg *config.Config, service *intake.Service, client *http.Client, m *metrics.Metrics, static fs.FS) handler {
	h := handler{
		service:        service,
		client:         client,
		metrics:        m,
		proxy:          cfg.Proxy,
		allowedOrigins: cfg.Application.AllowedOrigins,
	}

	if client == nil {
		client = http.DefaultClient
	}

	// relay не ходит по редиректам, 3xx отдаётся клиенту как есть
	relayClient := *client
	relayClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	h.client = &relayClient

	if cfg.Proxy.RateLimit > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Proxy.RateLimit), cfg.Proxy.RateBurst)
	}

	if m != nil {
		h.exportMetrics = m.Handler()
	}

	if static != nil {
		h.static = fasthttpadaptor.NewFastHTTPHandler(http.StripPrefix(routeApp, http.FileServerFS(static)))
	}

	return h
}

// Handler - корневой обработчик для fasthttp.Server со всеми middleware
func (h handler) Handler() fasthttp.RequestHandler {
	return withRequestID(h.withAccessLog(h.withCORS(h.route)))
}

func (h handler) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch {
	case path == routeInfo && isRead(ctx):
		h.Info(ctx)
	case path == routeRequest && ctx.IsPost():
		h.Request(ctx)
	case path == routeDownload && isRead(ctx):
		h.DirectDownload(ctx)
	case path == routeMetrics && isRead(ctx) && h.exportMetrics != nil:
		h.exportMetrics(ctx)
	case path == routeApp && isRead(ctx) && h.static != nil:
		ctx.Redirect(routeApp+"/", fasthttp.StatusMovedPermanently)
	case strings.HasPrefix(path, routeApp+"/") && isRead(ctx) && h.static != nil:
		h.static(ctx)
	default:
		h.NotFound(ctx)
	}
}

// methodName - метка метода для метрик, нестандартные методы сводятся к other
func methodName(method string) string {
	switch method {
	case fasthttp.MethodGet, fasthttp.MethodHead, fasthttp.MethodPost, fasthttp.MethodOptions:
		return method
	}

	return routeOther
}

// routeName - метка маршрута для метрик, все неизвестные пути сводятся к other
func routeName(path string) string {
	switch path {
	case routeInfo, routeRequest, routeDownload, routeMetrics:
		return path
	}

	if path == routeApp || strings.HasPrefix(path, routeApp+"/") {
		return routeApp
	}

	return routeOther
}

func isRead(ctx *fasthttp.RequestCtx) bool {
	return ctx.IsGet() || ctx.IsHead()
}
