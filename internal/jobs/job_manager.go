package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	occupancyMonitorJob *OccupancyMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the summary report query handler as a dependency to wire up the
// occupancy monitor.
func NewJobManager(
	reportHandler queries.SummaryReportQueryHandler,
	occupancySpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		occupancyMonitorJob: NewOccupancyMonitorJob(reportHandler, occupancySpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.occupancyMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start occupancy monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.occupancyMonitorJob.Stop()
}
