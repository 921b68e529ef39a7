// Package config manages application configuration from environment variables,
// config files, and default values.
package config

import (
	"errors"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config defines the application configuration. Values can be set via environment
// variables prefixed with BOT_ (e.g., BOT_TELEGRAM_TOKEN) or through config.yaml.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Store    StoreConfig    `mapstructure:"store"`
	Messages MessagesConfig `mapstructure:"messages"`
}

// LogConfig controls the slog handler built at startup.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds gateway settings.
type TelegramConfig struct {
	Token              string  `mapstructure:"token"                validate:"required"`
	APIURL             string  `mapstructure:"api_url"              validate:"omitempty,url"`
	RegisterCommands   bool    `mapstructure:"register_commands"`
	DropPendingUpdates bool    `mapstructure:"drop_pending_updates"`
	AllowedChatIDs     []int64 `mapstructure:"allowed_chat_ids"`

	// BotUsername is filled at runtime from getMe, never from configuration.
	BotUsername string `mapstructure:"-"`
}

// ReminderConfig describes the periodic reminder broadcast.
type ReminderConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	ChannelID        int64         `mapstructure:"channel_id"        validate:"required_if=Enabled true"`
	Interval         time.Duration `mapstructure:"interval"          validate:"min=1s"`
	StartImmediately bool          `mapstructure:"start_immediately"`
	Message          string        `mapstructure:"message"           validate:"required_if=Enabled true"`
}

// StoreConfig selects the task store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory sqlite"`
	DSN    string `mapstructure:"dsn"    validate:"required_if=Driver sqlite"`
}

// MessagesConfig holds every user-facing reply text. Fields ending in Fmt
// take a single %s argument.
type MessagesConfig struct {
	Welcome       string `mapstructure:"welcome"        validate:"required"`
	Help          string `mapstructure:"help"           validate:"required"`
	TaskAddedFmt  string `mapstructure:"task_added_fmt" validate:"required"`
	NoTasks       string `mapstructure:"no_tasks"       validate:"required"`
	ListHeader    string `mapstructure:"list_header"    validate:"required"`
	ListItemFmt   string `mapstructure:"list_item_fmt"  validate:"required"`
	RemovedFmt    string `mapstructure:"removed_fmt"    validate:"required"`
	NotFound      string `mapstructure:"not_found"      validate:"required"`
	AddUsage      string `mapstructure:"add_usage"      validate:"required"`
	RemoveUsage   string `mapstructure:"remove_usage"   validate:"required"`
	NotAuthorized string `mapstructure:"not_authorized" validate:"required"`
	GeneralError  string `mapstructure:"general_error"  validate:"required"`
}

// IsChatAllowed reports whether commands from chatID may run.
// An empty allow-list admits every chat.
func (c TelegramConfig) IsChatAllowed(chatID int64) bool {
	if len(c.AllowedChatIDs) == 0 {
		return true
	}
	for _, id := range c.AllowedChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}
