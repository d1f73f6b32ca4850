package tiktok

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StounhandJ/video_helper/internal/platform"
)

const okResponse = `{
	"code": 0,
	"msg": "success",
	"processed_time": 0.1234,
	"data": {
		"id": "7300000000000000000",
		"region": "US",
		"title": "cat video",
		"cover": "https://p16.example/cover.jpg",
		"origin_cover": "https://p16.example/origin.jpg",
		"duration": 14,
		"play": "https://v16.example/play.mp4",
		"anchors": [{"id": "1", "icon": {"url_list": ["a", "b"]}}],
		"author": {"id": "1", "unique_id": "catlover", "nickname": "Cat Lover"}
	}
}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()

	var gotURL string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &gotURL
}

func TestLookup(t *testing.T) {
	srv, gotURL := newTestServer(t, http.StatusOK, okResponse)

	d := NewWithBaseURL(srv.Client(), srv.URL+"/api/")
	require.Equal(t, platform.TikTok, d.Platform())

	video, err := d.Lookup(context.Background(), "https://vt.tiktok.com/ZS123/")
	require.NoError(t, err)
	require.Equal(t, "https://vt.tiktok.com/ZS123/", *gotURL)
	require.Equal(t, "cat video", video.Title)
	require.Equal(t, "Cat Lover", video.Author)
	require.Equal(t, "https://p16.example/origin.jpg", video.ThumbnailURL)
	require.Equal(t, 14, video.Duration)
}

func TestLookupApiErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"rate limit", `{"code": -1, "msg": "Free Api Limit: 1 request/second."}`, ErrRateLimit},
		{"parse", `{"code": -1, "msg": "Url parsing is failed! Please check url."}`, ErrParse},
		{"unknown", `{"code": -1, "msg": "something else"}`, ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tt.body)

			_, err := NewWithBaseURL(srv.Client(), srv.URL).Lookup(context.Background(), "https://www.tiktok.com/@a/video/1")
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLookupBadStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadGateway, "")

	_, err := NewWithBaseURL(srv.Client(), srv.URL).Lookup(context.Background(), "https://www.tiktok.com/@a/video/1")
	require.ErrorIs(t, err, ErrStatus)
}

func TestLookupBrokenJSON(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"code": 0, "data": {`)

	_, err := NewWithBaseURL(srv.Client(), srv.URL).Lookup(context.Background(), "https://www.tiktok.com/@a/video/1")
	require.Error(t, err)
}
