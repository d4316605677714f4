// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OccupancyMonitorJob - periodically samples per-zone shelf occupancy
// through the summary report query and logs zones approaching capacity
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reportHandler, jobSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The occupancy monitor logs query failures and keeps running; a transient
// database error must not kill the schedule.
package jobs
