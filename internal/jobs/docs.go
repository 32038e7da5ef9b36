// Package jobs provides scheduled background tasks for the work-order service.
//
// Jobs are cron-based and built on github.com/robfig/cron/v3 with the
// seconds field enabled.
//
// # Available Jobs
//
// OverdueOrdersJob lists every order that is neither completed nor cancelled
// and whose due date has passed, and logs a warning for each one. It runs on
// the OVERDUE_SCAN_SCHEDULE expression, every minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueHandler, config.OverdueScanSchedule, time.Now, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed scan is logged and retried on the next tick; an invalid schedule
// makes StartAll fail.
package jobs
