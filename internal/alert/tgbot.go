package alert

import (
	"MentorMarket/internal/lib/sl"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

const maxMessageLen = 4000

// TgBot sends operator alerts to a single Telegram chat.
type TgBot struct {
	log     *slog.Logger
	api     *tgbotapi.Bot
	adminId int64
}

func NewTgBot(apiKey string, adminId int64, log *slog.Logger) (*TgBot, error) {
	if adminId == 0 {
		return nil, fmt.Errorf("admin id is not set")
	}
	api, err := tgbotapi.NewBot(apiKey, &tgbotapi.BotOpts{
		RequestOpts: &tgbotapi.RequestOpts{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}

	return &TgBot{
		// the alert handler wraps the root logger, so this one must not feed back into it
		log:     log.With(sl.Module("tgbot")),
		api:     api,
		adminId: adminId,
	}, nil
}

// SendMessage delivers msg asynchronously; failures are only logged.
func (t *TgBot) SendMessage(msg string) {
	text := truncate(msg, maxMessageLen)
	if strings.TrimSpace(text) == "" {
		return
	}
	go func() {
		_, err := t.api.SendMessage(t.adminId, text, &tgbotapi.SendMessageOpts{})
		if err != nil {
			t.log.With(
				slog.Int64("id", t.adminId),
			).Warn("sending alert", sl.Err(err))
		}
	}()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
