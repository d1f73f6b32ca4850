package telegram

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/StounhandJ/video_helper/internal/utils"
)

const (
	messageLimit = 4096
	captionLimit = 1024
)

// Получение ID отправителя сообщения
func GetUserID(update telego.Update) int64 {
	if update.Message != nil {
		if update.Message.From != nil && !update.Message.From.IsBot {
			return update.Message.From.ID
		}

		return update.Message.Chat.ID
	}

	return 0
}

// Получение ID чата
func GetChatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

// Получение текста сообщения
func GetMessageText(update telego.Update) string {
	if update.Message != nil {
		return update.Message.Text
	}

	return ""
}

// Получение ID текущего сообщения
func GetCurrentMessageID(update telego.Update) int {
	if update.Message != nil && (update.Message.From == nil || !update.Message.From.IsBot) {
		return update.Message.MessageID
	}

	return 0
}

// MessageParams собирает параметры ответа без отправки
func MessageParams(isChat, isSendReplay bool, update telego.Update, text string, args ...any) *telego.SendMessageParams {
	sendChatID := GetUserID(update)
	if isChat {
		sendChatID = GetChatID(update)
	}

	params := &telego.SendMessageParams{
		ChatID:    tu.ID(sendChatID),
		Text:      TruncateText(text, messageLimit),
		ParseMode: telego.ModeHTML,
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	}

	if isSendReplay {
		params.ReplyParameters = &telego.ReplyParameters{
			MessageID:                GetCurrentMessageID(update),
			ChatID:                   tu.ID(sendChatID),
			AllowSendingWithoutReply: true,
		}
	}

	for _, v := range args {
		if markup, ok := v.(telego.ReplyMarkup); ok {
			params.ReplyMarkup = markup
		}
	}

	return params
}

// Отправка сообщения
func SendMessage(ctx *th.Context, isChat, isSendReplay bool, update telego.Update, text string, args ...any) int {
	msg, err := ctx.Bot().SendMessage(ctx, MessageParams(isChat, isSendReplay, update, text, args...))
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}

// TruncateText обрезает по рунам, лимиты Telegram считаются в символах
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}

func TruncateCaption(s string) string {
	return TruncateText(s, captionLimit)
}
