package telegram

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mooshieblob1/LegendsBot/internal/bot/handlers"
	"github.com/Mooshieblob1/LegendsBot/internal/config"
	"github.com/Mooshieblob1/LegendsBot/internal/database"
	"github.com/Mooshieblob1/LegendsBot/internal/testutil"
)

func testDeps() handlers.HandlerDeps {
	cfg := &config.Config{Messages: config.DefaultMessages}
	cfg.Telegram.BotUsername = "legends_bot"
	return handlers.HandlerDeps{
		Logger: slog.New(slog.DiscardHandler),
		Config: cfg,
		Store:  database.NewMemoryStore(),
	}
}

func testHandlers() []handlers.RegisteredHandler {
	return handlers.RegisterAllCommands(testDeps())
}

func TestNewTelegramBotRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	_, err := NewTelegramBot("", nil)
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestNewTelegramBot(t *testing.T) {
	t.Parallel()

	api := testutil.NewFakeBotAPI(t)
	b, err := NewTelegramBot(testutil.TestToken, slog.New(slog.DiscardHandler),
		bot.WithSkipGetMe(), bot.WithServerURL(api.URL()))
	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestTokenPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123456:T...", tokenPrefix(testutil.TestToken))
	assert.Equal(t, "***", tokenPrefix("short"))
}

func TestRegisteredCommandsDispatch(t *testing.T) {
	t.Parallel()

	deps := testDeps()
	api := testutil.NewFakeBotAPI(t)
	b := api.Bot(t, bot.WithDefaultHandler(handlers.NewDefaultHandler(deps)))
	require.NoError(t, RegisterHandlers(b, slog.New(slog.DiscardHandler), handlers.RegisterAllCommands(deps)))

	process := func(text string) {
		msg := &models.Message{ID: 1, Chat: models.Chat{ID: 77}, Text: text}
		if strings.HasPrefix(text, "/") {
			command, _, _ := strings.Cut(text, " ")
			msg.Entities = []models.MessageEntity{
				{Type: models.MessageEntityTypeBotCommand, Offset: 0, Length: len(command)},
			}
		}
		b.ProcessUpdate(context.Background(), &models.Update{ID: 1, Message: msg})
	}
	send := func(text string) string {
		process(text)
		return api.WaitForCall(t, "sendMessage", 2*time.Second).Form.Get("text")
	}

	assert.Equal(t, "Task added: water plants", send("/add water plants"))
	assert.Equal(t, "Saved tasks:\n- water plants", send("/list"))
	assert.Equal(t, "Removed: water plants", send("/remove water plants"))
	assert.Equal(t, "No tasks saved.", send("/list"))

	// Group clients append the bot username when a command is picked from the menu.
	assert.Equal(t, "Task added: milk", send("/add@legends_bot milk"))
	assert.Equal(t, "Saved tasks:\n- milk", send("/list@legends_bot"))
	assert.Equal(t, "Removed: milk", send("/remove@Legends_Bot milk"))

	replies := len(api.Calls("sendMessage"))
	process("/list@other_bot")
	process("just chatting")
	assert.Len(t, api.Calls("sendMessage"), replies, "commands for other bots and plain text get no reply")
}

func TestApplyMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) bot.Middleware {
		return func(next bot.HandlerFunc) bot.HandlerFunc {
			return func(ctx context.Context, b *bot.Bot, u *models.Update) {
				order = append(order, name)
				next(ctx, b, u)
			}
		}
	}
	h := applyMiddleware(func(context.Context, *bot.Bot, *models.Update) {
		order = append(order, "handler")
	}, []bot.Middleware{mw("outer"), mw("inner")})

	h(context.Background(), nil, &models.Update{})
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestSyncCommands(t *testing.T) {
	t.Parallel()

	api := testutil.NewFakeBotAPI(t)
	b := api.Bot(t)
	require.NoError(t, SyncCommands(context.Background(), b, nil, testHandlers()))

	calls := api.Calls("setMyCommands")
	require.Len(t, calls, 1)

	var got []models.BotCommand
	require.NoError(t, json.Unmarshal([]byte(calls[0].Form.Get("commands")), &got))

	var names []string
	for _, c := range got {
		names = append(names, c.Command)
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, []string{"start", "help", "add", "list", "remove"}, names)
}

func TestSyncCommandsPropagatesFailure(t *testing.T) {
	t.Parallel()

	api := testutil.NewFakeBotAPI(t)
	api.Fail("setMyCommands", "Unauthorized")

	err := SyncCommands(context.Background(), api.Bot(t), nil, testHandlers())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set bot commands")
}
