package jobs

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// newReminderJob posts the reminder message to the configured channel.
// A channel that cannot be resolved skips the tick silently; the next tick
// tries again.
func newReminderJob(deps JobDeps) JobFunc {
	log := deps.Logger.With("job", "reminder")
	channelID := deps.Config.Reminder.ChannelID
	text := deps.Config.Reminder.Message

	return func(ctx context.Context) error {
		if _, err := deps.Messenger.GetChat(ctx, &bot.GetChatParams{ChatID: channelID}); err != nil {
			log.DebugContext(ctx, "Reminder channel not resolvable, skipping tick",
				"channel_id", channelID, "error", err)
			return nil
		}

		if _, err := deps.Messenger.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: channelID,
			Text:   text,
		}); err != nil {
			return fmt.Errorf("failed to send reminder to %d: %w", channelID, err)
		}

		log.DebugContext(ctx, "Reminder sent", "channel_id", channelID)
		return nil
	}
}
