package youtube

import (
	"context"
	"errors"
	"net/http"

	"github.com/kkdai/youtube/v2"

	"github.com/StounhandJ/video_helper/internal/downloaders"
	"github.com/StounhandJ/video_helper/internal/platform"
)

var ErrEmptyVideo = errors.New("youtube вернул пустое описание ролика")

type downloader struct {
	client *youtube.Client
}

func New(client *http.Client) downloaders.IDownloader {
	return &downloader{
		client: &youtube.Client{
			HTTPClient: client,
		},
	}
}

func (downloader) Platform() platform.Platform {
	return platform.YouTube
}

func (d downloader) Lookup(ctx context.Context, url string) (*downloaders.Video, error) {
	youtubeVideo, err := d.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, err
	}

	return toVideo(youtubeVideo)
}

func toVideo(v *youtube.Video) (*downloaders.Video, error) {
	if v == nil || v.Title == "" {
		return nil, ErrEmptyVideo
	}

	video := &downloaders.Video{
		Title:    v.Title,
		Author:   v.Author,
		Duration: int(v.Duration.Seconds()),
	}

	// последняя миниатюра самая крупная
	if len(v.Thumbnails) > 0 {
		video.ThumbnailURL = v.Thumbnails[len(v.Thumbnails)-1].URL
	}

	return video, nil
}
