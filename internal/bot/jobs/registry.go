package jobs

import (
	"context"
	"time"
)

// JobFunc is the body of a scheduled job. The context is cancelled when the
// scheduler shuts down.
type JobFunc func(ctx context.Context) error

// Job couples a JobFunc with its fixed-interval schedule.
type Job struct {
	Interval         time.Duration
	StartImmediately bool
	Run              JobFunc
}

// RegisterAllJobs returns every enabled job keyed by name.
func RegisterAllJobs(deps JobDeps) map[string]Job {
	registered := make(map[string]Job)

	if deps.Config.Reminder.Enabled {
		registered["reminder"] = Job{
			Interval:         deps.Config.Reminder.Interval,
			StartImmediately: deps.Config.Reminder.StartImmediately,
			Run:              newReminderJob(deps),
		}
	}

	deps.Logger.Info("Initialized scheduled jobs", "count", len(registered))
	return registered
}
