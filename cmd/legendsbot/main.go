// Package main contains the entrypoint for the LegendsBot Telegram bot.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"
	"github.com/spf13/cobra"

	"github.com/Mooshieblob1/LegendsBot/internal/bot"
	"github.com/Mooshieblob1/LegendsBot/internal/bot/handlers"
	"github.com/Mooshieblob1/LegendsBot/internal/bot/jobs"
	"github.com/Mooshieblob1/LegendsBot/internal/config"
	"github.com/Mooshieblob1/LegendsBot/internal/database"
	"github.com/Mooshieblob1/LegendsBot/internal/logger"
	"github.com/Mooshieblob1/LegendsBot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("legendsbot failed", "error", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "legendsbot",
		Short:         "Telegram bot keeping a shared task list and posting periodic reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "./config.yaml", "Path to configuration file")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to a dotenv file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the bot until interrupted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), opts)
			},
		},
		&cobra.Command{
			Use:   "register-commands",
			Short: "Publish the command list to Telegram and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return registerCommands(cmd.Context(), opts)
			},
		},
	)
	return root
}

// setup loads configuration and installs the configured logger as default.
func setup(opts *options) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration from %s: %w", opts.configPath, err)
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)
	return cfg, log, nil
}

func newTelegramBot(cfg *config.Config, log *slog.Logger) (*tgbot.Bot, error) {
	return telegram.NewTelegramBot(cfg.Telegram.Token, log,
		tgbot.WithSkipGetMe(),
		tgbot.WithServerURL(cfg.Telegram.APIURL),
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithErrorsHandler(logger.ErrorsHandler(log)),
		tgbot.WithDefaultHandler(handlers.NewDefaultHandler(handlers.HandlerDeps{Logger: log, Config: cfg})),
	)
}

// serve runs the bot until ctx is cancelled.
func serve(ctx context.Context, opts *options) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}

	store, err := database.NewStore(cfg.Store, log)
	if err != nil {
		return fmt.Errorf("failed to initialize task store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close task store", "error", err)
		}
	}()

	tg, err := newTelegramBot(cfg, log)
	if err != nil {
		return err
	}

	me, err := tg.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bot info: %w", err)
	}
	cfg.Telegram.BotUsername = me.Username
	log.Info("Logged in", "bot_id", me.ID, "bot_username", me.Username)

	if cfg.Telegram.DropPendingUpdates {
		if _, err := tg.DeleteWebhook(ctx, &tgbot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			log.Warn("Failed to drop pending updates", "error", err)
		}
	}

	cmdHandlers := handlers.RegisterAllCommands(handlers.HandlerDeps{
		Logger: log,
		Config: cfg,
		Store:  store,
	})
	if err := telegram.RegisterHandlers(tg, log, cmdHandlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	if cfg.Telegram.RegisterCommands {
		if err := telegram.SyncCommands(ctx, tg, log, cmdHandlers); err != nil {
			log.Warn("Failed to publish bot commands", "error", err)
		}
	}

	sched, err := bot.NewScheduler(log, jobs.RegisterAllJobs(jobs.JobDeps{
		Logger:    log,
		Config:    cfg,
		Messenger: tg,
	}))
	if err != nil {
		return err
	}

	app := bot.NewBot(log, tg, sched)

	log.Info("Starting bot...")
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bot stopped: %w", err)
	}

	log.Info("Bot stopped gracefully.")
	return nil
}

// registerCommands publishes the command menu without starting the bot.
func registerCommands(ctx context.Context, opts *options) error {
	cfg, log, err := setup(opts)
	if err != nil {
		return err
	}

	tg, err := newTelegramBot(cfg, log)
	if err != nil {
		return err
	}

	cmdHandlers := handlers.RegisterAllCommands(handlers.HandlerDeps{
		Logger: log,
		Config: cfg,
		Store:  database.NewMemoryStore(),
	})
	return telegram.SyncCommands(ctx, tg, log, cmdHandlers)
}
