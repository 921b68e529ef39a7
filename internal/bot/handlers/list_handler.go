package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewListHandler returns a handler for the /list command.
func NewListHandler(deps HandlerDeps) bot.HandlerFunc {
	return listHandler{deps}.Handle
}

type listHandler struct {
	deps HandlerDeps
}

func (h listHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "list")

	if update.Message == nil {
		log.WarnContext(ctx, "List handler received update without message", "update_id", update.ID)
		return
	}

	sendReply(ctx, b, log, update.Message, h.respond(ctx))
}

// respond renders the saved tasks as a bulleted list under a header line.
func (h listHandler) respond(ctx context.Context) string {
	msgs := h.deps.Config.Messages

	tasks, err := h.deps.Store.ListTasks(ctx)
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return msgs.GeneralError
	}
	if len(tasks) == 0 {
		return msgs.NoTasks
	}

	var sb strings.Builder
	sb.WriteString(msgs.ListHeader)
	for _, task := range tasks {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, msgs.ListItemFmt, task)
	}
	return sb.String()
}
