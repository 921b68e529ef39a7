package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "warn", true)

	log.Info("dropped")
	log.Warn("kept", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected, got %q", buf.String())
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestMiddlewareLogsAndCallsNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(&buf, "debug", false)

	called := false
	next := func(_ context.Context, _ *bot.Bot, update *models.Update) {
		called = true
		assert.Equal(t, int64(7), update.ID)
	}

	handler := Middleware(log)(next)
	handler(context.Background(), nil, &models.Update{
		ID: 7,
		Message: &models.Message{
			ID:   3,
			Chat: models.Chat{ID: -100},
			From: &models.User{ID: 9},
			Text: "/add water the plants",
		},
	})

	require.True(t, called)
	out := buf.String()
	assert.Contains(t, out, "Processing update")
	assert.Contains(t, out, "Finished processing update")
	assert.Contains(t, out, "chat_id=-100")
	assert.Contains(t, out, "update_type=message")
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short", input: "abc", maxLen: 10, want: "abc"},
		{name: "exact", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "cut", input: "abcdefgh", maxLen: 6, want: "abc..."},
		{name: "tiny limit", input: "abcdefgh", maxLen: 2, want: "..."},
		{name: "multibyte", input: "⏰⏰⏰⏰⏰⏰", maxLen: 5, want: "⏰⏰..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateString(tt.input, tt.maxLen))
		})
	}
}
