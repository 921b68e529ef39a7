package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStartHandler returns a handler for the /start command.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

// startHandler processes the /start command using injected dependencies.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	if update.Message == nil {
		log.WarnContext(ctx, "Start handler received update without message", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /start command", "chat_id", update.Message.Chat.ID)
	sendReply(ctx, b, log, update.Message, withBotName(h.deps, h.deps.Config.Messages.Welcome))
}

// withBotName substitutes @botname in text with the bot's real username once known.
func withBotName(deps HandlerDeps, text string) string {
	if username := deps.Config.Telegram.BotUsername; username != "" {
		return strings.ReplaceAll(text, "@botname", "@"+username)
	}
	return text
}
