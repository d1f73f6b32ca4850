package handlers

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/video_helper/internal/utils"
)

const (
	headerRequestID = "X-Request-ID"
	requestIDKey    = "request_id"

	maxRequestIDLen = 128
)

func withRequestID(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := strings.TrimSpace(string(ctx.Request.Header.Peek(headerRequestID)))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		ctx.SetUserValue(requestIDKey, id)
		ctx.Response.Header.Set(headerRequestID, id)

		next(ctx)
	}
}

func requestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)

	return id
}

func requestLog(ctx *fasthttp.RequestCtx) *logrus.Entry {
	return utils.Log.WithField(requestIDKey, requestID(ctx))
}

// withAccessLog - строка лога в духе morgan tiny и метрики запроса.
// Для потокового ответа bytes равен Content-Length апстрима или -1
func (h handler) withAccessLog(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		next(ctx)

		elapsed := time.Since(start)
		status := ctx.Response.StatusCode()
		method := string(ctx.Method())
		path := string(ctx.Path())

		bytes := ctx.Response.Header.ContentLength()
		if !ctx.Response.IsBodyStream() {
			bytes = len(ctx.Response.Body())
		}

		if h.metrics != nil {
			h.metrics.ObserveRequest(methodName(method), routeName(path), status, elapsed.Seconds())
		}

		requestLog(ctx).WithFields(logrus.Fields{
			"method":   method,
			"path":     path,
			"status":   status,
			"bytes":    bytes,
			"duration": elapsed.String(),
		}).Info("http")
	}
}

// withCORS - запросы без Origin пропускаются всегда, пустой список разрешает всех
func (h handler) withCORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	origins := make(map[string]struct{}, len(h.allowedOrigins))
	for _, o := range h.allowedOrigins {
		origins[o] = struct{}{}
	}

	allowAll := len(origins) == 0

	return func(ctx *fasthttp.RequestCtx) {
		origin := string(ctx.Request.Header.Peek(fasthttp.HeaderOrigin))

		if origin != "" {
			if allowAll {
				ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, "*")
			} else if _, ok := origins[origin]; ok {
				ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, origin)
				ctx.Response.Header.Add(fasthttp.HeaderVary, fasthttp.HeaderOrigin)
				ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowCredentials, "true")
			} else {
				requestLog(ctx).WithField("origin", origin).Warn("CORS: источник не разрешён")
				ctx.Error("CORS origin denied", fasthttp.StatusForbidden)

				return
			}
		}

		ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
		ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, "+headerRequestID)
		ctx.Response.Header.Set(fasthttp.HeaderAccessControlExposeHeaders, "Content-Disposition, "+headerRequestID)

		if ctx.IsOptions() {
			ctx.SetStatusCode(fasthttp.StatusNoContent)

			return
		}

		next(ctx)
	}
}
