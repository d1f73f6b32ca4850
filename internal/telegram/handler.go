package telegram

import (
	"sync/atomic"

	th "github.com/mymmrac/telego/telegohandler"

	"github.com/StounhandJ/video_helper/internal/config"
	"github.com/StounhandJ/video_helper/internal/intake"
)

type handler struct {
	service *intake.Service

	publicURL string
	thumbnail string

	requested *atomic.Int64
}

func NewHandler(cfg *config.Config, service *intake.Service) handler {
	return handler{
		service:   service,
		publicURL: cfg.Application.PublicURL,
		thumbnail: cfg.Telegram.ThumbnailURL,
		requested: &atomic.Int64{},
	}
}

func (h handler) SetupRoutes(bh *th.BotHandler) {
	// Базовые действия
	bh.Handle(h.StartCommand, th.CommandEqual("start"))
	bh.Handle(h.LinkMessage, th.AnyMessageWithText(), th.Not(th.AnyCommand()))

	bh.HandleInlineQuery(h.InlineVideo)
}
