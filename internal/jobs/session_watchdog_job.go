package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// sessionClock exposes the age of the active preparation session.
type sessionClock interface {
	StaleSince(ctx context.Context) (time.Time, bool)
}

// SessionWatchdogJob watches the active preparation session and warns when
// it has not seen a scan for longer than the stale threshold. It never
// touches the session: an abandoned batch may still be resumed, so cleanup
// stays a human decision.
type SessionWatchdogJob struct {
	clock     sessionClock
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSessionWatchdogJob creates a watchdog over the session registry.
func NewSessionWatchdogJob(clock sessionClock, threshold time.Duration, logger *slog.Logger) *SessionWatchdogJob {
	return &SessionWatchdogJob{
		clock:     clock,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "session_watchdog_job"),
	}
}

// Start begins the watchdog, checking every minute.
func (j *SessionWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		savedAt, active := j.clock.StaleSince(ctx)
		if !active {
			return
		}

		if age := time.Since(savedAt); age > j.threshold {
			j.logger.WarnContext(ctx, "Preparation session looks abandoned",
				"idle", age.Round(time.Second), "threshold", j.threshold)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session watchdog job started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *SessionWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session watchdog job stopped")
}
