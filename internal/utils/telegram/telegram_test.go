package telegram

import (
	"strings"
	"testing"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/stretchr/testify/require"
)

func TestMessageParams(t *testing.T) {
	update := telego.Update{Message: &telego.Message{
		MessageID: 7,
		From:      &telego.User{ID: 11},
		Chat:      telego.Chat{ID: 22},
		Text:      "https://youtu.be/abc",
	}}

	markup := tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("a").WithURL("https://a.example")))

	params := MessageParams(true, true, update, strings.Repeat("я", 5000), markup)
	require.Equal(t, tu.ID(22), params.ChatID)
	require.Equal(t, telego.ModeHTML, params.ParseMode)
	require.Equal(t, 7, params.ReplyParameters.MessageID)
	require.Len(t, []rune(params.Text), 4096)
	require.Equal(t, markup, params.ReplyMarkup)

	params = MessageParams(false, false, update, "hi")
	require.Equal(t, tu.ID(11), params.ChatID)
	require.Nil(t, params.ReplyParameters)
}

func TestUpdateGetters(t *testing.T) {
	require.Zero(t, GetUserID(telego.Update{}))
	require.Zero(t, GetChatID(telego.Update{}))
	require.Empty(t, GetMessageText(telego.Update{}))

	fromBot := telego.Update{Message: &telego.Message{
		MessageID: 3,
		From:      &telego.User{ID: 1, IsBot: true},
		Chat:      telego.Chat{ID: 2},
	}}
	require.EqualValues(t, 2, GetUserID(fromBot))
	require.Zero(t, GetCurrentMessageID(fromBot))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "абв", TruncateText("абвгд", 3))
	require.Equal(t, "ab", TruncateText("ab", 3))
	require.Len(t, []rune(TruncateCaption(strings.Repeat("z", 2000))), 1024)
}
