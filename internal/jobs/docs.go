// Package jobs provides scheduled background tasks for the fulfillment
// service, built on github.com/robfig/cron/v3.
//
// Two jobs run alongside the API:
//
//  1. SessionCheckpointJob - flushes the active preparation session to its
//     durable slot every 30 seconds, backstopping the per-scan autosave.
//  2. SessionWatchdogJob - checks every minute whether the active session
//     has gone idle past its threshold and logs a warning. It never
//     discards the session.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(registry, 30*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
