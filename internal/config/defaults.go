package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for configuration
const (
	DefaultLogLevel = "info"

	DefaultTelegramAPIURL = "https://api.telegram.org"

	DefaultStoreDriver = "memory"
	DefaultStoreDSN    = ":memory:"

	DefaultReminderInterval = time.Minute
	DefaultReminderMessage  = "⏰ Reminder: Stay hydrated and check your tasks!"
)

// DefaultMessages are the reply texts used when config.yaml does not override them.
var DefaultMessages = MessagesConfig{
	Welcome: "👋 Hi! I keep a shared task list for this chat. Send /help to see what I can do.",
	Help: "Commands:\n" +
		"/add <task> - save a task\n" +
		"/list - show saved tasks\n" +
		"/remove <task> - delete a task by its exact text",
	TaskAddedFmt:  "Task added: %s",
	NoTasks:       "No tasks saved.",
	ListHeader:    "Saved tasks:",
	ListItemFmt:   "- %s",
	RemovedFmt:    "Removed: %s",
	NotFound:      "Task not found.",
	AddUsage:      "Usage: /add <task>",
	RemoveUsage:   "Usage: /remove <task>",
	NotAuthorized: "🚫 This chat is not allowed to use this bot.",
	GeneralError:  "❌ An error occurred. Please try again later.",
}

// setDefaults registers default values for every key so that viper also
// resolves them from the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", false)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.api_url", DefaultTelegramAPIURL)
	v.SetDefault("telegram.register_commands", true)
	v.SetDefault("telegram.drop_pending_updates", true)
	v.SetDefault("telegram.allowed_chat_ids", []int64{})

	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.channel_id", 0)
	v.SetDefault("reminder.interval", DefaultReminderInterval)
	v.SetDefault("reminder.start_immediately", true)
	v.SetDefault("reminder.message", DefaultReminderMessage)

	v.SetDefault("store.driver", DefaultStoreDriver)
	v.SetDefault("store.dsn", DefaultStoreDSN)

	v.SetDefault("messages.welcome", DefaultMessages.Welcome)
	v.SetDefault("messages.help", DefaultMessages.Help)
	v.SetDefault("messages.task_added_fmt", DefaultMessages.TaskAddedFmt)
	v.SetDefault("messages.no_tasks", DefaultMessages.NoTasks)
	v.SetDefault("messages.list_header", DefaultMessages.ListHeader)
	v.SetDefault("messages.list_item_fmt", DefaultMessages.ListItemFmt)
	v.SetDefault("messages.removed_fmt", DefaultMessages.RemovedFmt)
	v.SetDefault("messages.not_found", DefaultMessages.NotFound)
	v.SetDefault("messages.add_usage", DefaultMessages.AddUsage)
	v.SetDefault("messages.remove_usage", DefaultMessages.RemoveUsage)
	v.SetDefault("messages.not_authorized", DefaultMessages.NotAuthorized)
	v.SetDefault("messages.general_error", DefaultMessages.GeneralError)
}
