package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewDefaultHandler returns the handler for updates no command matched.
// They are dropped without a reply.
func NewDefaultHandler(deps HandlerDeps) bot.HandlerFunc {
	log := deps.Logger.With("handler", "default")

	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		if update.Message == nil {
			log.DebugContext(ctx, "Ignoring non-message update", "update_id", update.ID)
			return
		}
		log.DebugContext(ctx, "Ignoring message without a known command",
			"update_id", update.ID, "chat_id", update.Message.Chat.ID)
	}
}
