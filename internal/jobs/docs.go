// Package jobs provides scheduled background tasks of the request registry.
//
// Jobs are built on github.com/robfig/cron/v3 with second-precision schedules.
//
// # Available Jobs
//
// 1. StatusGaugeJob - refreshes the per-status request gauge from the read side
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, m, "*/15 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
