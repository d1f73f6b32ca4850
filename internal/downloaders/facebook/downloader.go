package facebook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/StounhandJ/video_helper/internal/downloaders"
	"github.com/StounhandJ/video_helper/internal/platform"
	"github.com/StounhandJ/video_helper/internal/utils"
)

var (
	ErrNoMeta      = errors.New("og:title не найден, страница закрыта или требует входа")
	ErrForeignHost = errors.New("хост не относится к facebook")
)

// Хосты, на которые разрешены запросы, вместе с поддоменами
var defaultHosts = []string{"facebook.com", "fb.watch"}

// Страницы с видео бывают большими, og-теги всегда в начале
const maxPageSize = 2 << 20

type downloader struct {
	client *http.Client
	hosts  []string
}

func New(client *http.Client) downloaders.IDownloader {
	return newWithHosts(client, defaultHosts)
}

func newWithHosts(client *http.Client, hosts []string) *downloader {
	d := &downloader{hosts: hosts}

	// редиректы fb.watch -> facebook.com проверяются тем же списком
	c := *client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}

		if !d.allowedHost(req.URL) {
			return fmt.Errorf("%w: %s", ErrForeignHost, req.URL.Hostname())
		}

		return nil
	}
	d.client = &c

	return d
}

// allowedHost - точное совпадение или поддомен, в отличие от классификатора
func (d downloader) allowedHost(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())

	for _, h := range d.hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}

	return false
}

func (downloader) Platform() platform.Platform {
	return platform.Facebook
}

func (d downloader) Lookup(ctx context.Context, videoURL string) (*downloaders.Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return nil, err
	}

	if !d.allowedHost(req.URL) {
		return nil, fmt.Errorf("%w: %s", ErrForeignHost, req.URL.Hostname())
	}

	req.Header.Add("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36")
	req.Header.Add("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, err
	}

	title, ok := findMetaContent(data, "og:title")
	if !ok || title == "" {
		return nil, ErrNoMeta
	}

	thumbnail, _ := findMetaContent(data, "og:image")

	return &downloaders.Video{
		Title:        title,
		ThumbnailURL: thumbnail,
		Duration:     metaInt(data, "video:duration"),
	}, nil
}
