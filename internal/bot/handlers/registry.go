package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its description and middleware.
// It encapsulates all information needed to register and document a command.
type RegisteredHandler struct {
	Pattern     string
	Description string
	Match       tgbot.MatchFunc
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
}

// RegisterAllCommands returns every bot command in the order they are
// advertised to Telegram.
func RegisterAllCommands(deps HandlerDeps) []RegisteredHandler {
	chatMiddleware := []tgbot.Middleware{AllowedChatsOnly(deps)}
	botUsername := func() string { return deps.Config.Telegram.BotUsername }

	command := func(pattern, description string, handler tgbot.HandlerFunc) RegisteredHandler {
		return RegisteredHandler{
			Pattern:     pattern,
			Description: description,
			Match:       commandMatcher(pattern, botUsername),
			Handler:     handler,
			Middleware:  chatMiddleware,
		}
	}

	return []RegisteredHandler{
		command("start", "Show the welcome message", NewStartHandler(deps)),
		command("help", "List available commands", NewHelpHandler(deps)),
		command("add", "Save a task: /add <task>", NewAddHandler(deps)),
		command("list", "Show saved tasks", NewListHandler(deps)),
		command("remove", "Delete a task by its exact text: /remove <task>", NewRemoveHandler(deps)),
	}
}
