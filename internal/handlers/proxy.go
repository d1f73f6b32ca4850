package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/StounhandJ/video_helper/internal/utils"
)

var (
	ErrMissingParameter = errors.New("missing source parameter")
	ErrDisallowedSource = errors.New("source is not allowed")
	ErrUpstreamFailure  = errors.New("upstream failure")
	ErrRateLimited      = errors.New("relay rate limit exceeded")
)

var relayErrors = map[error]struct {
	status  int
	message string
}{
	ErrMissingParameter: {fasthttp.StatusBadRequest, "Missing source parameter."},
	ErrDisallowedSource: {fasthttp.StatusBadRequest, "Source is not allowed."},
	ErrRateLimited:      {fasthttp.StatusTooManyRequests, "Too many requests."},
	ErrUpstreamFailure:  {fasthttp.StatusInternalServerError, "Failed to fetch source."},
}

// DirectDownload отдаёт разрешённый файл как вложение. Тело апстрима
// не буферизуется, fasthttp вычитывает его уже после выхода из обработчика
func (h handler) DirectDownload(ctx *fasthttp.RequestCtx) {
	source := string(ctx.QueryArgs().Peek("source"))

	switch {
	case source == "":
		h.relayError(ctx, ErrMissingParameter)

		return
	case !h.proxy.IsAllowed(source):
		h.relayError(ctx, fmt.Errorf("%w: %s", ErrDisallowedSource, source))

		return
	case h.limiter != nil && !h.limiter.Allow():
		h.relayError(ctx, ErrRateLimited)

		return
	}

	// контекст запроса fasthttp не годится, тело читается после возврата из обработчика
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, source, nil)
	if err != nil {
		h.relayError(ctx, fmt.Errorf("%w: %v", ErrUpstreamFailure, err))

		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if h.metrics != nil {
			h.metrics.UpstreamError("fetch")
		}

		h.relayError(ctx, fmt.Errorf("%w: %v", ErrUpstreamFailure, err))

		return
	}

	if resp.StatusCode != http.StatusOK {
		if h.metrics != nil {
			h.metrics.UpstreamError(strconv.Itoa(resp.StatusCode))
		}

		requestLog(ctx).WithFields(logrus.Fields{
			"source": source,
			"status": resp.StatusCode,
		}).Warn("Апстрим ответил не 200, статус передаётся клиенту")
	}

	ctx.SetStatusCode(resp.StatusCode)
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, utils.SanitizeFileName(h.proxy.Filename)))
	ctx.SetContentType("video/mp4")

	body := &countingReader{ReadCloser: resp.Body}
	if h.metrics != nil {
		body.onClose = h.metrics.RelayBytes
	}

	ctx.SetBodyStream(body, int(resp.ContentLength))
}

func (h handler) relayError(ctx *fasthttp.RequestCtx, err error) {
	for sentinel, e := range relayErrors {
		if !errors.Is(err, sentinel) {
			continue
		}

		entry := requestLog(ctx)
		if e.status >= fasthttp.StatusInternalServerError {
			entry.Error(err)
		} else {
			entry.Debug(err)
		}

		ctx.Error(e.message, e.status)

		return
	}

	requestLog(ctx).Error(err)
	ctx.Error(internalErrorMessage, fasthttp.StatusInternalServerError)
}

// countingReader считает отданные байты и сообщает их при закрытии
type countingReader struct {
	io.ReadCloser

	n       int
	onClose func(n int)
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	r.n += n

	return n, err
}

func (r *countingReader) Close() error {
	if r.onClose != nil {
		r.onClose(r.n)
		r.onClose = nil
	}

	return r.ReadCloser.Close()
}
