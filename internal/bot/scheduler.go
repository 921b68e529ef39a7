package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/Mooshieblob1/LegendsBot/internal/bot/jobs"
	"github.com/Mooshieblob1/LegendsBot/internal/logger"
)

// ErrSchedulerStarted is returned by a second call to Scheduler.Start.
var ErrSchedulerStarted = errors.New("scheduler already started")

// Scheduler runs registered jobs at fixed intervals using gocron.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	jobs      map[string]jobs.Job
	mu        sync.Mutex
	started   bool
	stopped   bool
}

// NewScheduler creates a scheduler for the given jobs. Nothing runs until Start.
func NewScheduler(log *slog.Logger, registered map[string]jobs.Job) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "scheduler")

	s, err := gocron.NewScheduler(
		gocron.WithLogger(logger.NewGocronLogger(log)),
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		logger:    log,
		jobs:      registered,
	}, nil
}

// Start schedules every job and starts ticking. A scheduler can be started
// once; later calls return ErrSchedulerStarted.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrSchedulerStarted
	}
	s.started = true

	if len(s.jobs) == 0 {
		s.logger.Warn("No scheduled jobs registered.")
	}

	for name, job := range s.jobs {
		if job.Run == nil {
			s.logger.Warn("Skipping job without a body", "job_name", name)
			continue
		}

		opts := []gocron.JobOption{
			gocron.WithName(name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		}
		if job.StartImmediately {
			opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
		}

		if _, err := s.scheduler.NewJob(
			gocron.DurationJob(job.Interval),
			gocron.NewTask(s.runJob, name, job.Run),
			opts...,
		); err != nil {
			return fmt.Errorf("failed to schedule job %q: %w", name, err)
		}
		s.logger.Info("Scheduled job", "job_name", name, "interval", job.Interval,
			"start_immediately", job.StartImmediately)
	}

	s.scheduler.Start()
	s.logger.Info("Scheduler started", "jobs_scheduled", len(s.scheduler.Jobs()))
	return nil
}

// runJob wraps a job body with logging. gocron injects ctx, which is
// cancelled on Shutdown.
func (s *Scheduler) runJob(ctx context.Context, name string, run jobs.JobFunc) {
	startTime := time.Now()
	s.logger.DebugContext(ctx, "Running scheduled job", "job_name", name)

	if err := run(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Scheduled job failed", "job_name", name, "error", err)
		return
	}
	s.logger.DebugContext(ctx, "Finished scheduled job", "job_name", name, "duration", time.Since(startTime))
}

// Stop shuts the scheduler down, waiting for running jobs to complete.
// Only the first call has any effect.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}
	s.stopped = true

	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	s.logger.Info("Scheduler stopped gracefully.")
	return nil
}
