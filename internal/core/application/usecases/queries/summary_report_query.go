package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrSummaryReportQueryIsNotConstructed = errors.New(
	"SummaryReportQuery must be created via NewSummaryReportQuery constructor",
)

// DefaultRecentLimit is the number of audit entries included in the summary
// report when the caller does not ask for a specific amount.
const DefaultRecentLimit = 10

// SummaryReportQuery requests one consistent snapshot of the warehouse:
// package counts per category and status, per-zone occupancy and the most
// recent audit activity.
type SummaryReportQuery struct {
	recentLimit int

	guard guard.ConstructorGuard
}

// NewSummaryReportQuery creates a summary report query. A recentLimit of 0
// selects DefaultRecentLimit; negative values are rejected.
func NewSummaryReportQuery(recentLimit int) (SummaryReportQuery, error) {
	if recentLimit < 0 {
		return SummaryReportQuery{}, errs.NewValueIsInvalidError("recentLimit")
	}
	if recentLimit == 0 {
		recentLimit = DefaultRecentLimit
	}

	return SummaryReportQuery{
		recentLimit: recentLimit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSummaryReportQueryIsNotConstructed if validation fails.
func (q SummaryReportQuery) Validate() error {
	return q.guard.Validate(ErrSummaryReportQueryIsNotConstructed)
}

// RecentLimit returns how many audit entries the report includes.
func (q SummaryReportQuery) RecentLimit() int {
	return q.recentLimit
}

// CategoryCount is one row of the per-category breakdown. Categories without
// packages appear with a zero count.
type CategoryCount struct {
	Category string
	Count    int64
}

// StatusCount is one row of the per-status breakdown.
type StatusCount struct {
	Status string
	Count  int64
}

// ZoneOccupancy describes shelf utilization of one zone.
type ZoneOccupancy struct {
	Zone     string
	Occupied int64
	Total    int64
	Rate     float64
}

// RecentActivity is one audit entry of the report, joined with the parcel's
// barcode for display.
type RecentActivity struct {
	Barcode     string
	Action      string
	OldStatus   string
	NewStatus   string
	OldLocation string
	NewLocation string
	RecordedAt  time.Time
}

// SummaryReportQueryResponse is the aggregate read model of the warehouse.
// All sections come from one transaction and describe the same instant.
type SummaryReportQueryResponse struct {
	ByCategory     []CategoryCount
	ByStatus       []StatusCount
	Occupancy      []ZoneOccupancy
	RecentActivity []RecentActivity
}
