package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// highOccupancyThreshold is the utilization rate above which a zone is
// reported as nearly full.
const highOccupancyThreshold = 0.8

// OccupancyMonitorJob periodically samples per-zone shelf occupancy through
// the summary report query and logs the current utilization. Zones above the
// threshold are logged at warning level so operators see capacity pressure
// before registrations start failing.
type OccupancyMonitorJob struct {
	handler queries.SummaryReportQueryHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOccupancyMonitorJob creates a new occupancy monitoring job.
// The spec is a six-field cron expression with a seconds component,
// e.g. "0 * * * * *" for once a minute.
func NewOccupancyMonitorJob(
	handler queries.SummaryReportQueryHandler,
	spec string,
	logger *slog.Logger,
) *OccupancyMonitorJob {
	return &OccupancyMonitorJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "occupancy_monitor_job"),
	}
}

// Start begins the occupancy monitoring schedule.
func (j *OccupancyMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		query, err := queries.NewSummaryReportQuery(queries.DefaultRecentLimit)
		if err != nil {
			j.logger.ErrorContext(ctx, "Occupancy monitor job failed to build query", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Occupancy monitor job failed", "error", err)
			return
		}

		for _, zone := range report.Occupancy {
			if zone.Rate >= highOccupancyThreshold {
				j.logger.WarnContext(ctx, "Zone is nearly full",
					"zone", zone.Zone, "occupied", zone.Occupied, "total", zone.Total, "rate", zone.Rate)
				continue
			}
			j.logger.InfoContext(ctx, "Zone occupancy",
				"zone", zone.Zone, "occupied", zone.Occupied, "total", zone.Total, "rate", zone.Rate)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy monitor job started", "spec", j.spec)
	return nil
}

// Stop stops the occupancy monitoring schedule.
func (j *OccupancyMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Occupancy monitor job stopped")
}
