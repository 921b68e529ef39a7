package handlers

import (
	"log/slog"

	"github.com/Mooshieblob1/LegendsBot/internal/config"
	"github.com/Mooshieblob1/LegendsBot/internal/database"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Store  database.Store
}
