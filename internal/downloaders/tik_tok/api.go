//go:generate easyjson api.go
package tiktok

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	netUrl "net/url"

	easyjson "github.com/mailru/easyjson"

	"github.com/StounhandJ/video_helper/internal/utils"
)

const (
	BaseUrl = "https://tikwm.com/api/"
)

var (
	ErrRateLimit = errors.New("rate limit exceeded")
	ErrParse     = errors.New("parse error")
	ErrUnknown   = errors.New("unknown error")
	ErrStatus    = errors.New("unexpected status")
)

func fetchMetadata(ctx context.Context, client *http.Client, baseURL, postUrl string) (ApiResponse, error) {
	postUrl = fmt.Sprintf("%s?url=%s", baseURL, netUrl.QueryEscape(postUrl))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postUrl, nil)
	if err != nil {
		return ApiResponse{}, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Add("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return ApiResponse{}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return ApiResponse{}, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return ApiResponse{}, err
	}

	var data ApiResponse

	err = easyjson.Unmarshal(b, &data)
	if err != nil {
		return ApiResponse{}, err
	}

	if data.Code != 0 {
		switch {
		case strings.HasPrefix(data.Msg, "Free Api Limit"):
			return data, ErrRateLimit
		case strings.HasPrefix(data.Msg, "Url parsing is failed"):
			return data, ErrParse
		default:
			return data, ErrUnknown
		}
	}

	return data, nil
}

// easyjson:json
type ApiResponse struct {
	Code          int     `json:"code,omitempty"`
	Msg           string  `json:"msg"`
	ProcessedTime float64 `json:"processed_time,omitempty"`
	Data          ApiData `json:"data,omitempty"`
}

// easyjson:json
type ApiData struct {
	ID          string    `json:"id,omitempty"`
	Region      string    `json:"region,omitempty"`
	Title       string    `json:"title,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	OriginCover string    `json:"origin_cover,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Play        string    `json:"play,omitempty"`
	Hdplay      string    `json:"hdplay,omitempty"`
	Wmplay      string    `json:"wmplay,omitempty"`
	Author      ApiAuthor `json:"author,omitempty"`
}

// easyjson:json
type ApiAuthor struct {
	ID       string `json:"id,omitempty"`
	UniqueID string `json:"unique_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
