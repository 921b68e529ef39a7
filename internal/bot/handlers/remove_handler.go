package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewRemoveHandler returns a handler for the /remove command.
func NewRemoveHandler(deps HandlerDeps) bot.HandlerFunc {
	return removeHandler{deps}.Handle
}

// removeHandler deletes the first task whose text equals the argument exactly.
type removeHandler struct {
	deps HandlerDeps
}

func (h removeHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "remove")

	if update.Message == nil {
		log.WarnContext(ctx, "Remove handler received update without message", "update_id", update.ID)
		return
	}

	reply := h.respond(ctx, commandArgument(update.Message.Text))
	sendReply(ctx, b, log, update.Message, reply)
}

func (h removeHandler) respond(ctx context.Context, description string) string {
	msgs := h.deps.Config.Messages
	if description == "" {
		return msgs.RemoveUsage
	}

	removed, err := h.deps.Store.RemoveTask(ctx, description)
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to remove task", "error", err)
		return msgs.GeneralError
	}
	if !removed {
		return msgs.NotFound
	}

	h.deps.Logger.InfoContext(ctx, "Task removed", "task", description)
	return fmt.Sprintf(msgs.RemovedFmt, description)
}
