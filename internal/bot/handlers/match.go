package handlers

import (
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// commandMatcher matches messages that open with /pattern or
// /pattern@<bot username>. The username is read on every call because it is
// only known after getMe, and it compares case-insensitively as Telegram does.
// Commands addressed to another bot do not match.
func commandMatcher(pattern string, botUsername func() string) tgbot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}
		text := update.Message.Text

		for _, e := range update.Message.Entities {
			if e.Type != models.MessageEntityTypeBotCommand || e.Offset != 0 {
				continue
			}
			// Offsets count UTF-16 units; commands and usernames are ASCII.
			if e.Length < 2 || e.Length > len(text) {
				return false
			}

			name, mention, addressed := strings.Cut(text[1:e.Length], "@")
			if name != pattern {
				return false
			}
			if !addressed {
				return true
			}
			username := botUsername()
			return username != "" && strings.EqualFold(mention, username)
		}
		return false
	}
}
