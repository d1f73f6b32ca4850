package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StounhandJ/video_helper/internal/platform"
	"github.com/stretchr/testify/require"
)

const testYAML = `
Application:
  Name: "demo"
  Author: "tester"
  LogLevel: "debug"
  Port: 3000
  AllowedOrigins: []
  ShutdownTimeout: 5

Proxy:
  AllowedPrefixes:
    - "https://static.example.com/videos/"
  Filename: "clip.mp4"
  HeaderTimeout: "15s"

Download:
  DefaultAsset: "https://static.example.com/videos/myvideo.mp4"
  Assets:
    TikTok: "https://static.example.com/videos/tiktok.mp4"
  FetchMetadata: true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestParseConfigFromYAML(t *testing.T) {
	os.Args = []string{os.Args[0]}

	var cfg Config
	require.NoError(t, parseConfig(&cfg, writeConfig(t, testYAML), CommonParseOptions))

	require.Equal(t, "demo", cfg.Application.Name)
	require.Equal(t, 3000, cfg.Application.Port)
	require.Equal(t, 5*time.Second, cfg.Application.ShutdownTimeout.Std())
	require.Equal(t, 15*time.Second, cfg.Proxy.HeaderTimeout.Std())
	require.Equal(t, "clip.mp4", cfg.Proxy.Filename)
	require.True(t, cfg.Download.FetchMetadata)
	require.Equal(t, "https://static.example.com/videos/tiktok.mp4", cfg.Download.Assets["TikTok"])
}

func TestParseConfigEnvOverridesYAML(t *testing.T) {
	os.Args = []string{os.Args[0]}
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_PUBLIC_URL", "https://api.example/")
	t.Setenv("PROXY_FILENAME", "other.mp4")

	var cfg Config
	require.NoError(t, parseConfig(&cfg, writeConfig(t, testYAML), CommonParseOptions))

	_, err := cfg.Validate()
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Application.Port)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Application.AllowedOrigins)
	require.Equal(t, "https://api.example", cfg.Application.PublicURL)
	require.Equal(t, "other.mp4", cfg.Proxy.Filename)
}

func TestParseConfigMissingFile(t *testing.T) {
	var cfg Config
	err := parseConfig(&cfg, filepath.Join(t.TempDir(), "nope.yaml"), CommonParseOptions)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func validConfig() Config {
	return Config{
		Application: Application{Port: 3000},
		Proxy: Proxy{
			AllowedPrefixes: []string{"https://static.example.com/videos/"},
		},
		Download: Download{
			DefaultAsset: "https://static.example.com/videos/myvideo.mp4",
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := validConfig()

		warnings, err := cfg.Validate()
		require.NoError(t, err)
		require.Empty(t, warnings)
		require.Equal(t, "video.mp4", cfg.Proxy.Filename)
		require.Empty(t, cfg.Application.AllowedOrigins)
	})

	t.Run("wildcard origin allows all", func(t *testing.T) {
		cfg := validConfig()
		cfg.Application.AllowedOrigins = []string{"https://a.example", " * "}

		_, err := cfg.Validate()
		require.NoError(t, err)
		require.Nil(t, cfg.Application.AllowedOrigins)
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Application.Port = 0

		_, err := cfg.Validate()
		require.ErrorIs(t, err, ErrBadPort)
	})

	t.Run("no prefixes", func(t *testing.T) {
		cfg := validConfig()
		cfg.Proxy.AllowedPrefixes = []string{" ", ""}

		_, err := cfg.Validate()
		require.ErrorIs(t, err, ErrNoAllowedPrefixes)
	})

	t.Run("no default asset", func(t *testing.T) {
		cfg := validConfig()
		cfg.Download.DefaultAsset = "  "

		_, err := cfg.Validate()
		require.ErrorIs(t, err, ErrNoDefaultAsset)
	})

	t.Run("negative rate", func(t *testing.T) {
		cfg := validConfig()
		cfg.Proxy.RateLimit = -1

		_, err := cfg.Validate()
		require.ErrorIs(t, err, ErrBadRateLimit)
	})

	t.Run("burst raised", func(t *testing.T) {
		cfg := validConfig()
		cfg.Proxy.RateLimit = 2

		_, err := cfg.Validate()
		require.NoError(t, err)
		require.Equal(t, 1, cfg.Proxy.RateBurst)
	})

	t.Run("asset warnings", func(t *testing.T) {
		cfg := validConfig()
		cfg.Download.DefaultAsset = "https://evil.example/x.mp4"
		cfg.Download.Assets = map[string]string{
			"YouTube": "https://static.example.com/videos/yt.mp4",
			"vimeo":   "https://static.example.com/videos/vimeo.mp4",
		}

		warnings, err := cfg.Validate()
		require.NoError(t, err)
		require.Len(t, warnings, 2)
		require.Equal(t, map[string]string{"youtube": "https://static.example.com/videos/yt.mp4"}, cfg.Download.Assets)
	})
}

func TestProxyIsAllowed(t *testing.T) {
	p := Proxy{AllowedPrefixes: []string{"https://static.example.com/videos/"}}

	require.True(t, p.IsAllowed("https://static.example.com/videos/myvideo.mp4"))
	require.False(t, p.IsAllowed("https://evil.example/x.mp4"))
	require.False(t, p.IsAllowed("https://static.example.com/other/x.mp4"))
	require.False(t, p.IsAllowed(""))
}

func TestDownloadAsset(t *testing.T) {
	d := Download{
		DefaultAsset: "https://static.example.com/videos/default.mp4",
		Assets:       map[string]string{"tiktok": "https://static.example.com/videos/tt.mp4"},
	}

	require.Equal(t, "https://static.example.com/videos/tt.mp4", d.Asset(platform.TikTok))
	require.Equal(t, "https://static.example.com/videos/default.mp4", d.Asset(platform.YouTube))
	require.Equal(t, "https://static.example.com/videos/default.mp4", d.Asset(platform.Unknown))
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		in   any
		want time.Duration
	}{
		{"1m30s", 90 * time.Second},
		{int64(2), 2 * time.Second},
		{1.5, 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		var d Duration

		err := d.UnmarshalYAML(func(dst interface{}) error {
			switch p := dst.(type) {
			case *string:
				s, ok := tt.in.(string)
				if !ok {
					return os.ErrInvalid
				}

				*p = s
			case *int64:
				i, ok := tt.in.(int64)
				if !ok {
					return os.ErrInvalid
				}

				*p = i
			case *float64:
				f, ok := tt.in.(float64)
				if !ok {
					return os.ErrInvalid
				}

				*p = f
			}

			return nil
		})
		require.NoError(t, err)
		require.Equal(t, tt.want, d.Std())
	}
}
