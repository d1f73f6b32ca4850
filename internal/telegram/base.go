package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/StounhandJ/video_helper/internal/intake"
	"github.com/StounhandJ/video_helper/internal/utils"
	telegramUtils "github.com/StounhandJ/video_helper/internal/utils/telegram"
)

const startText = "Пришлите ссылку на ролик YouTube, Facebook или TikTok, бот определит платформу и вернёт ссылку на файл.\n" +
	"В любом чате можно написать @бота и ссылку"

// Стартовое сообщение
func (h handler) StartCommand(ctx *th.Context, update telego.Update) error {
	telegramUtils.SendMessage(ctx, false, false, update, startText)

	return nil
}

// LinkMessage отвечает на ссылку в личном сообщении тем же, что вернул бы POST /api/request
func (h handler) LinkMessage(ctx *th.Context, update telego.Update) error {
	text := h.replyText(ctx, strings.TrimSpace(telegramUtils.GetMessageText(update)))
	telegramUtils.SendMessage(ctx, true, true, update, text)

	return nil
}

func (h handler) InlineVideo(ctx *th.Context, query telego.InlineQuery) error {
	results := h.inlineResults(ctx, strings.TrimSpace(query.Query))

	cacheTime := 300
	if len(results) == 0 {
		cacheTime = 0
	}

	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       results,
		CacheTime:     cacheTime,
	})
}

func (h handler) replyText(ctx context.Context, videoURL string) string {
	resp, err := h.service.Handle(ctx, intake.DownloadRequest{VideoURL: videoURL})
	if err != nil {
		return intake.InvalidInputMessage
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Платформа: <b>%s</b>\n", html.EscapeString(resp.Info.Platform))

	if resp.Info.Title != "" {
		fmt.Fprintf(&b, "%s\n", html.EscapeString(resp.Info.Title))
	}

	if resp.Info.Duration > 0 {
		fmt.Fprintf(&b, "Длительность: %s\n", utils.FormatSecondsToMMSS(resp.Info.Duration))
	}

	fmt.Fprintf(&b, "%s: <a href=\"%s\">%s</a>",
		html.EscapeString(resp.Message),
		html.EscapeString(resp.DownloadURL),
		html.EscapeString(resp.Info.Filename),
	)

	return b.String()
}

// inlineResults - пустой список, если ссылка не подошла или не задан PublicURL:
// Telegram принимает только абсолютные ссылки на видео
func (h handler) inlineResults(ctx context.Context, videoURL string) []telego.InlineQueryResult {
	results := []telego.InlineQueryResult{}

	if h.publicURL == "" || !platformURL(videoURL) {
		return results
	}

	resp, err := h.service.Handle(ctx, intake.DownloadRequest{VideoURL: videoURL})
	if err != nil {
		return results
	}

	if n := h.requested.Add(1); n%10 == 0 {
		utils.Log.Infof("Количество запрошенных роликов %d", n)
	}

	info := resp.Info
	title := utils.StringNotEmptyCoalesce(info.Title, info.Platform)
	description := info.Platform
	if info.Duration > 0 {
		description = fmt.Sprintf("%s %s", utils.FormatSecondsToMMSS(info.Duration), info.Platform)
	}

	return append(results, &telego.InlineQueryResultVideo{
		Type:                  telego.ResultTypeVideo,
		ID:                    videoURL[:min(64, len(videoURL))],
		Title:                 telegramUtils.TruncateText(title, 200),
		Caption:               telegramUtils.TruncateCaption(title),
		VideoURL:              resp.DownloadURL,
		ThumbnailURL:          utils.StringNotEmptyCoalesce(info.ThumbnailURL, h.thumbnail),
		MimeType:              "video/mp4",
		VideoDuration:         info.Duration,
		ShowCaptionAboveMedia: true,
		Description:           description,
		ReplyMarkup:           tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Оригинал").WithURL(videoURL))),
	})
}

// platformURL максимально быстрая проверка, что inline запрос похож на ссылку
func platformURL(s string) bool {
	// Минимальная длина: http://youtu.be/X
	if len(s) < 17 {
		return false
	}

	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
