// Package handlers contains Telegram bot command handlers,
// along with their registration logic and middleware.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// AllowedChatsOnly creates a middleware that drops commands coming from chats
// outside telegram.allowed_chat_ids, answering with the not-authorized message.
// With an empty allow-list every chat passes.
func AllowedChatsOnly(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, bot, update)
				return
			}

			chatID := update.Message.Chat.ID
			if deps.Config.Telegram.IsChatAllowed(chatID) {
				next(ctx, bot, update)
				return
			}

			log := deps.Logger.With("middleware", "AllowedChatsOnly")
			log.WarnContext(ctx, "Command from chat outside the allow-list", "chat_id", chatID)
			sendReply(ctx, bot, log, update.Message, deps.Config.Messages.NotAuthorized)
		}
	}
}
