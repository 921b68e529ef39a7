package handlers

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// maxMessageLength is Telegram's limit on message text, in UTF-16 code units.
const maxMessageLength = 4096

// commandArgument returns the text after the leading /command token,
// trimmed. Whitespace inside the argument is kept.
func commandArgument(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(text[idx:])
}

// sendReply answers in the chat (and forum topic) msg came from, split into
// as many messages as the length limit requires.
// Delivery failures are logged and stop the remaining parts.
func sendReply(ctx context.Context, b *bot.Bot, log *slog.Logger, msg *models.Message, text string) {
	parts := splitMessage(text, maxMessageLength)
	for i, part := range parts {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          msg.Chat.ID,
			MessageThreadID: msg.MessageThreadID,
			Text:            part,
		})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", msg.Chat.ID,
				"part", i+1, "parts", len(parts))
			return
		}
	}
	log.DebugContext(ctx, "Reply sent", "chat_id", msg.Chat.ID, "parts", len(parts))
}

// splitMessage breaks text into chunks of at most limit UTF-16 units.
// Chunks end on line boundaries; a single line longer than limit is cut.
// Whitespace-only chunks are dropped since Telegram rejects them.
func splitMessage(text string, limit int) []string {
	if utf16Len(text) <= limit {
		return []string{text}
	}

	var (
		chunks  []string
		cur     strings.Builder
		curLen  int
		started bool
	)
	flush := func() {
		if strings.TrimSpace(cur.String()) != "" {
			chunks = append(chunks, cur.String())
		}
		cur.Reset()
		curLen = 0
		started = false
	}

	for _, line := range strings.Split(text, "\n") {
		for _, piece := range cutLine(line, limit) {
			n := utf16Len(piece)
			if started && curLen+1+n > limit {
				flush()
			}
			if started {
				cur.WriteByte('\n')
				curLen++
			}
			cur.WriteString(piece)
			curLen += n
			started = true
		}
	}
	flush()
	return chunks
}

// cutLine splits line into pieces of at most limit UTF-16 units without
// breaking a rune.
func cutLine(line string, limit int) []string {
	if utf16Len(line) <= limit {
		return []string{line}
	}

	var pieces []string
	start, units := 0, 0
	for i, r := range line {
		n := utf16.RuneLen(r)
		if units+n > limit {
			pieces = append(pieces, line[start:i])
			start, units = i, 0
		}
		units += n
	}
	return append(pieces, line[start:])
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
