package intake

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"github.com/sirupsen/logrus"

	"github.com/StounhandJ/video_helper/internal/config"
	downloadersService "github.com/StounhandJ/video_helper/internal/downloaders"
	"github.com/StounhandJ/video_helper/internal/platform"
	"github.com/StounhandJ/video_helper/internal/utils"
)

const (
	InvalidInputMessage = "Invalid or missing video URL."
	ReadyMessage        = "Your file is ready."

	DirectDownloadPath = "/direct-download"

	defaultInfoName    = "Video Helper Backend"
	defaultInfoMessage = "Backend is running. Implement your own processing / download logic according to each platform's rules."

	metadataTimeout = 5 * time.Second
)

var ErrInvalidInput = errors.New("invalid input")

// Observer получает сигналы классификации, реализуется метриками
type Observer interface {
	Detected(p platform.Platform)
	Mismatch()
}

type noopObserver struct{}

func (noopObserver) Detected(platform.Platform) {}
func (noopObserver) Mismatch()                  {}

type Service struct {
	app      config.Application
	download config.Download
	filename string

	registry *downloadersService.Registry
	observer Observer
}

// New - registry может быть nil, тогда метаданные не запрашиваются
func New(cfg *config.Config, registry *downloadersService.Registry, observer Observer) *Service {
	if observer == nil {
		observer = noopObserver{}
	}

	return &Service{
		app:      cfg.Application,
		download: cfg.Download,
		filename: cfg.Proxy.Filename,
		registry: registry,
		observer: observer,
	}
}

// DecodeRequest разбирает тело запроса, битый json считается неверным вводом
func DecodeRequest(body []byte) (DownloadRequest, error) {
	var req DownloadRequest

	if err := easyjson.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return req, nil
}

func (s *Service) Handle(ctx context.Context, req DownloadRequest) (*Response, error) {
	videoURL := req.VideoURL
	if videoURL == "" || !platform.LooksLikeURL(videoURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, videoURL)
	}

	resolution := utils.StringNotEmptyCoalesce(req.Resolution, DefaultResolution)
	clientPlatform := strings.ToLower(strings.TrimSpace(req.Platform))

	detected := platform.Detect(videoURL)
	s.observer.Detected(detected)

	if detected == platform.Unknown {
		utils.Log.WithField("url", videoURL).Warn("Неизвестная платформа")
	}

	if clientPlatform != "" && detected != platform.Unknown && clientPlatform != detected.String() {
		s.observer.Mismatch()
		utils.Log.WithFields(logrus.Fields{
			"fromClient": clientPlatform,
			"inferred":   detected.String(),
			"url":        videoURL,
		}).Warn("Платформа клиента не совпадает")
	}

	utils.Log.WithFields(logrus.Fields{
		"videoUrl":   videoURL,
		"resolution": resolution,
		"platform":   detected.String(),
	}).Info("Incoming request")

	asset := s.download.Asset(detected)

	info := &ReadyInfo{
		VideoURL:   videoURL,
		Resolution: resolution,
		Platform:   responsePlatform(detected, clientPlatform).String(),
		Source:     asset,
		Filename:   s.filename,
	}

	if s.download.FetchMetadata {
		s.enrich(ctx, detected, videoURL, info)
	}

	return &Response{
		Status:      StatusReady,
		Message:     ReadyMessage,
		DownloadURL: s.DownloadURL(asset),
		Info:        info,
	}, nil
}

// DownloadURL - ссылка на relay. Без PublicURL получается относительный путь
func (s *Service) DownloadURL(source string) string {
	return s.app.PublicURL + DirectDownloadPath + "?source=" + url.QueryEscape(source)
}

func (s *Service) Info() *InfoResponse {
	return &InfoResponse{
		Name:    utils.StringNotEmptyCoalesce(s.app.Name, defaultInfoName),
		Author:  s.app.Author,
		Message: defaultInfoMessage,
	}
}

func (s *Service) enrich(ctx context.Context, p platform.Platform, videoURL string, info *ReadyInfo) {
	if p == platform.Unknown {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	video, err := s.registry.Lookup(ctx, p, videoURL)
	if err != nil {
		if !errors.Is(err, downloadersService.ErrNoProvider) {
			utils.Log.WithFields(logrus.Fields{
				"platform": p.String(),
				"url":      videoURL,
			}).Warnf("Не удалось получить данные ролика: %v", err)
		}

		return
	}

	info.Title = video.Title
	info.Author = video.Author
	info.ThumbnailURL = video.ThumbnailURL
	info.Duration = video.Duration
}

func responsePlatform(detected platform.Platform, client string) platform.Platform {
	if detected != platform.Unknown {
		return detected
	}

	if p := platform.Parse(client); p != "" {
		return p
	}

	return platform.Unknown
}
