package telegram

import (
	"context"
	"strings"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"github.com/StounhandJ/video_helper/internal/config"
	"github.com/StounhandJ/video_helper/internal/intake"
)

func newTestHandler(publicURL string) handler {
	cfg := &config.Config{
		Application: config.Application{PublicURL: publicURL},
		Proxy: config.Proxy{
			AllowedPrefixes: []string{"https://static.example.com/videos/"},
			Filename:        "video.mp4",
		},
		Download: config.Download{DefaultAsset: "https://static.example.com/videos/myvideo.mp4"},
		Telegram: config.Telegram{ThumbnailURL: "https://static.example.com/videos/thumbnail.jpg"},
	}

	return NewHandler(cfg, intake.New(cfg, nil, nil))
}

func TestReplyText(t *testing.T) {
	h := newTestHandler("https://api.example")

	text := h.replyText(context.Background(), "https://www.tiktok.com/@cat/video/1?a=1&b=2")
	require.Contains(t, text, "<b>tiktok</b>")
	require.Contains(t, text, `href="https://api.example/direct-download?source=https%3A%2F%2Fstatic.example.com%2Fvideos%2Fmyvideo.mp4"`)
	require.Contains(t, text, ">video.mp4</a>")

	require.Equal(t, intake.InvalidInputMessage, h.replyText(context.Background(), "просто текст"))
}

func TestInlineResults(t *testing.T) {
	h := newTestHandler("https://api.example")

	results := h.inlineResults(context.Background(), "https://youtu.be/abcdef")
	require.Len(t, results, 1)

	video, ok := results[0].(*telego.InlineQueryResultVideo)
	require.True(t, ok)
	require.Equal(t, telego.ResultTypeVideo, video.Type)
	require.Equal(t, "youtube", video.Title)
	require.Equal(t, "video/mp4", video.MimeType)
	require.True(t, strings.HasPrefix(video.VideoURL, "https://api.example/direct-download?source="))
	require.Equal(t, "https://static.example.com/videos/thumbnail.jpg", video.ThumbnailURL)
	require.LessOrEqual(t, len(video.ID), 64)
	require.EqualValues(t, 1, h.requested.Load())

	long := "https://www.youtube.com/watch?v=" + strings.Repeat("x", 100)
	results = h.inlineResults(context.Background(), long)
	require.Len(t, results, 1)
	require.Len(t, results[0].(*telego.InlineQueryResultVideo).ID, 64)
}

func TestInlineResultsEmpty(t *testing.T) {
	h := newTestHandler("https://api.example")

	require.Empty(t, h.inlineResults(context.Background(), ""))
	require.Empty(t, h.inlineResults(context.Background(), "youtu.be/abc"))
	require.Empty(t, h.inlineResults(context.Background(), "https://"+strings.Repeat(" ", 20)))

	noPublic := newTestHandler("")
	require.Empty(t, noPublic.inlineResults(context.Background(), "https://youtu.be/abcdef"))
	require.Zero(t, noPublic.requested.Load())
}

func TestPlatformURL(t *testing.T) {
	require.True(t, platformURL("https://youtu.be/abc"))
	require.True(t, platformURL("http://youtu.be/X"))
	require.False(t, platformURL("ftp://youtube.com/abc"))
	require.False(t, platformURL("https://a.b"))
}
