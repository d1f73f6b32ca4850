package downloaders

import (
	"context"
	"errors"

	"github.com/StounhandJ/video_helper/internal/platform"
)

var ErrNoProvider = errors.New("no metadata provider for platform")

// IDownloader получает сведения о ролике на своей платформе. Сам файл не скачивается
type IDownloader interface {
	Platform() platform.Platform
	Lookup(ctx context.Context, url string) (*Video, error)
}

type Video struct {
	Title        string
	Author       string
	ThumbnailURL string
	Duration     int // секунды
}

type Registry struct {
	byPlatform map[platform.Platform]IDownloader
}

func NewRegistry(downloaders ...IDownloader) *Registry {
	r := &Registry{byPlatform: make(map[platform.Platform]IDownloader, len(downloaders))}

	for _, d := range downloaders {
		r.byPlatform[d.Platform()] = d
	}

	return r
}

func (r *Registry) Lookup(ctx context.Context, p platform.Platform, url string) (*Video, error) {
	if r == nil {
		return nil, ErrNoProvider
	}

	d, ok := r.byPlatform[p]
	if !ok {
		return nil, ErrNoProvider
	}

	return d.Lookup(ctx, url)
}
