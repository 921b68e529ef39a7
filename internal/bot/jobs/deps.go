// Package jobs implements the periodic jobs run by the bot scheduler.
package jobs

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Mooshieblob1/LegendsBot/internal/config"
)

// Messenger is the part of the Telegram client jobs talk to.
// *bot.Bot satisfies it.
type Messenger interface {
	GetChat(ctx context.Context, params *bot.GetChatParams) (*models.ChatFullInfo, error)
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// JobDeps contains the dependencies required by scheduled jobs.
type JobDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Messenger Messenger
}
