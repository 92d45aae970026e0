package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// sessionCheckpointer re-saves the active session to durable storage.
type sessionCheckpointer interface {
	Checkpoint(ctx context.Context) error
}

// SessionCheckpointJob periodically flushes the in-memory session to its
// durable slot. Scans already autosave on every mutation; this job closes
// the gap left when an autosave failed transiently.
type SessionCheckpointJob struct {
	checkpointer sessionCheckpointer
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewSessionCheckpointJob creates a checkpoint job over the session registry.
func NewSessionCheckpointJob(checkpointer sessionCheckpointer, logger *slog.Logger) *SessionCheckpointJob {
	return &SessionCheckpointJob{
		checkpointer: checkpointer,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "session_checkpoint_job"),
	}
}

// Start begins the checkpoint job, flushing every 30 seconds.
func (j *SessionCheckpointJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if err := j.checkpointer.Checkpoint(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Session checkpoint failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session checkpoint job started (running every 30 seconds)")
	return nil
}

// Stop stops the checkpoint job.
func (j *SessionCheckpointJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session checkpoint job stopped")
}
