package tiktok

import (
	"context"
	"net/http"

	"github.com/StounhandJ/video_helper/internal/downloaders"
	"github.com/StounhandJ/video_helper/internal/platform"
	"github.com/StounhandJ/video_helper/internal/utils"
)

type downloader struct {
	client  *http.Client
	baseURL string
}

func New(client *http.Client) downloaders.IDownloader {
	return NewWithBaseURL(client, BaseUrl)
}

// NewWithBaseURL нужен для тестов и зеркал tikwm
func NewWithBaseURL(client *http.Client, baseURL string) downloaders.IDownloader {
	return &downloader{
		client:  client,
		baseURL: baseURL,
	}
}

func (downloader) Platform() platform.Platform {
	return platform.TikTok
}

func (d downloader) Lookup(ctx context.Context, url string) (*downloaders.Video, error) {
	metadata, err := fetchMetadata(ctx, d.client, d.baseURL, url)
	if err != nil {
		return nil, err
	}

	return &downloaders.Video{
		Title:        metadata.Data.Title,
		Author:       utils.StringNotEmptyCoalesce(metadata.Data.Author.Nickname, metadata.Data.Author.UniqueID),
		ThumbnailURL: utils.StringNotEmptyCoalesce(metadata.Data.OriginCover, metadata.Data.Cover),
		Duration:     metadata.Data.Duration,
	}, nil
}
