package main

import (
	"bytes"
	"context"
	stdlog "log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mooshieblob1/LegendsBot/internal/config"
	"github.com/Mooshieblob1/LegendsBot/internal/testutil"
)

// botEnv points configuration at api and keeps the host environment out.
func botEnv(t *testing.T, api *testutil.FakeBotAPI) []string {
	t.Helper()

	for _, k := range []string{"TELEGRAM_TOKEN", "REMINDER_CHANNEL_ID", "BOT_STORE_DRIVER", "BOT_REMINDER_ENABLED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("BOT_TELEGRAM_TOKEN", testutil.TestToken)
	t.Setenv("BOT_TELEGRAM_API_URL", api.URL())
	t.Setenv("BOT_REMINDER_CHANNEL_ID", "-100500")
	t.Setenv("BOT_LOG_LEVEL", "error")

	dir := t.TempDir()
	return []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--env-file", filepath.Join(dir, ".env"),
	}
}

func TestRegisterCommands(t *testing.T) {
	api := testutil.NewFakeBotAPI(t)
	flags := botEnv(t, api)

	code := run(context.Background(), append([]string{"register-commands"}, flags...))
	require.Equal(t, 0, code)

	assert.Len(t, api.Calls("setMyCommands"), 1)
	assert.Empty(t, api.Calls("sendMessage"))
}

func TestServeSendsReminderAndStopsOnCancel(t *testing.T) {
	api := testutil.NewFakeBotAPI(t)
	flags := botEnv(t, api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)
	go func() { done <- run(ctx, append([]string{"serve"}, flags...)) }()

	call := api.WaitForCall(t, "sendMessage", 5*time.Second)
	assert.Equal(t, config.DefaultReminderMessage, call.Form.Get("text"))
	assert.Equal(t, "-100500", call.Form.Get("chat_id"))
	assert.Len(t, api.Calls("getMe"), 1)
	assert.Len(t, api.Calls("setMyCommands"), 1)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}

func TestServeFailsWhenGatewayUnreachable(t *testing.T) {
	api := testutil.NewFakeBotAPI(t)
	flags := botEnv(t, api)
	api.Fail("getMe", "Unauthorized")

	assert.Equal(t, 1, run(context.Background(), append([]string{"serve"}, flags...)))
}

func TestRunFailsWithoutToken(t *testing.T) {
	api := testutil.NewFakeBotAPI(t)
	flags := botEnv(t, api)
	t.Setenv("BOT_TELEGRAM_TOKEN", "")
	require.NoError(t, os.Unsetenv("BOT_TELEGRAM_TOKEN"))

	assert.Equal(t, 1, run(context.Background(), flags))
	assert.Empty(t, api.Calls("getMe"))
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	assert.Equal(t, 1, run(context.Background(), []string{"deploy"}))
}

func TestUnmatchedUpdatesStayOutOfStdlibLog(t *testing.T) {
	var std bytes.Buffer
	prev := stdlog.Writer()
	stdlog.SetOutput(&std)
	t.Cleanup(func() { stdlog.SetOutput(prev) })

	api := testutil.NewFakeBotAPI(t)
	cfg := &config.Config{Messages: config.DefaultMessages}
	cfg.Telegram.Token = testutil.TestToken
	cfg.Telegram.APIURL = api.URL()

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tg, err := newTelegramBot(cfg, log)
	require.NoError(t, err)

	tg.ProcessUpdate(context.Background(), &models.Update{
		ID:      3,
		Message: &models.Message{ID: 4, Chat: models.Chat{ID: 1}, Text: "hello there"},
	})

	assert.Empty(t, std.String())
	assert.Empty(t, api.Calls("sendMessage"))
	assert.Contains(t, logs.String(), "Ignoring message without a known command")
}
