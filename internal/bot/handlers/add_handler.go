package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAddHandler returns a handler for the /add command.
func NewAddHandler(deps HandlerDeps) bot.HandlerFunc {
	return addHandler{deps}.Handle
}

// addHandler appends the command argument to the task store.
type addHandler struct {
	deps HandlerDeps
}

func (h addHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add")

	if update.Message == nil {
		log.WarnContext(ctx, "Add handler received update without message", "update_id", update.ID)
		return
	}

	reply := h.respond(ctx, commandArgument(update.Message.Text))
	sendReply(ctx, b, log, update.Message, reply)
}

// respond saves description and returns the reply text.
func (h addHandler) respond(ctx context.Context, description string) string {
	msgs := h.deps.Config.Messages
	if description == "" {
		return msgs.AddUsage
	}

	if err := h.deps.Store.AddTask(ctx, description); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to add task", "error", err)
		return msgs.GeneralError
	}

	h.deps.Logger.InfoContext(ctx, "Task added", "task", description)
	return fmt.Sprintf(msgs.TaskAddedFmt, description)
}
