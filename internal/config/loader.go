package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envAliases lists unprefixed variable names accepted next to the BOT_* ones.
var envAliases = map[string][]string{
	"telegram.token":      {"BOT_TELEGRAM_TOKEN", "TELEGRAM_TOKEN"},
	"reminder.channel_id": {"BOT_REMINDER_CHANNEL_ID", "REMINDER_CHANNEL_ID"},
}

// Load loads and validates configuration from:
//  1. Default values
//  2. configPath (YAML, optional)
//  3. envFile, merged into the process environment (optional)
//  4. BOT_* environment variables
//
// Either path may be empty to skip that source.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to load env file %s: %v", ErrInvalidConfig, envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("%w: failed to bind %s: %v", ErrInvalidConfig, key, err)
		}
	}

	if err := readConfigFile(v, configPath); err != nil {
		return nil, fmt.Errorf("%w: failed to load config file: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	slog.Debug("configuration loaded",
		"config_path", configPath,
		"log_level", cfg.Log.Level,
		"store_driver", cfg.Store.Driver,
		"reminder_enabled", cfg.Reminder.Enabled,
		"reminder_interval", cfg.Reminder.Interval)

	return cfg, nil
}

// readConfigFile reads path into v. A missing file is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		slog.Debug("configuration file not found, using defaults and environment", "path", path)
		return nil
	}
	return err
}
