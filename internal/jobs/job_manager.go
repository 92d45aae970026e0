package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionWatchdogJob   *SessionWatchdogJob
	sessionCheckpointJob *SessionCheckpointJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	registry *commands.SessionRegistry,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionWatchdogJob:   NewSessionWatchdogJob(registry, staleThreshold, logger),
		sessionCheckpointJob: NewSessionCheckpointJob(registry, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already running are
// stopped again so a partial start never lingers.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionCheckpointJob.Start(); err != nil {
		return fmt.Errorf("failed to start session checkpoint job: %w", err)
	}

	if err := jm.sessionWatchdogJob.Start(); err != nil {
		jm.sessionCheckpointJob.Stop()
		return fmt.Errorf("failed to start session watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.sessionWatchdogJob.Stop()
	jm.sessionCheckpointJob.Stop()
}
