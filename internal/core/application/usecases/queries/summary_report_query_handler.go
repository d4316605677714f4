package queries

import (
	"context"

	"gorm.io/gorm"
)

// SummaryReportQueryHandler builds the warehouse summary report.
// Runs every aggregate inside one read transaction so the sections describe
// a single consistent snapshot.
type SummaryReportQueryHandler struct {
	db *gorm.DB
}

// NewSummaryReportQueryHandler creates a handler for summary report queries.
// Requires a GORM database connection for query execution.
func NewSummaryReportQueryHandler(db *gorm.DB) SummaryReportQueryHandler {
	return SummaryReportQueryHandler{db: db}
}

// Handle executes the report. Returns per-category counts (zero-count
// categories included), per-status counts, per-zone occupancy and the most
// recent audit activity joined with parcel barcodes.
func (h SummaryReportQueryHandler) Handle(
	ctx context.Context,
	query SummaryReportQuery,
) (SummaryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SummaryReportQueryResponse{}, err
	}

	var response SummaryReportQueryResponse

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		byCategory, err := h.countByCategory(tx)
		if err != nil {
			return err
		}
		response.ByCategory = byCategory

		byStatus, err := h.countByStatus(tx)
		if err != nil {
			return err
		}
		response.ByStatus = byStatus

		occupancy, err := h.zoneOccupancy(tx)
		if err != nil {
			return err
		}
		response.Occupancy = occupancy

		recent, err := h.recentActivity(tx, query.RecentLimit())
		if err != nil {
			return err
		}
		response.RecentActivity = recent

		return nil
	})
	if err != nil {
		return SummaryReportQueryResponse{}, err
	}

	return response, nil
}

func (h SummaryReportQueryHandler) countByCategory(tx *gorm.DB) ([]CategoryCount, error) {
	rows, err := tx.Raw(`
		SELECT
			c.name,
			COUNT(p.id)
		FROM categories c
		LEFT JOIN parcels p ON p.category_id = c.id
		GROUP BY c.name
		ORDER BY COUNT(p.id) DESC, c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]CategoryCount, 0)
	for rows.Next() {
		var row CategoryCount
		if err = rows.Scan(&row.Category, &row.Count); err != nil {
			return nil, err
		}
		counts = append(counts, row)
	}

	return counts, rows.Err()
}

func (h SummaryReportQueryHandler) countByStatus(tx *gorm.DB) ([]StatusCount, error) {
	rows, err := tx.Raw(`
		SELECT
			status,
			COUNT(*)
		FROM parcels
		GROUP BY status
		ORDER BY COUNT(*) DESC, status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]StatusCount, 0)
	for rows.Next() {
		var row StatusCount
		if err = rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		counts = append(counts, row)
	}

	return counts, rows.Err()
}

func (h SummaryReportQueryHandler) zoneOccupancy(tx *gorm.DB) ([]ZoneOccupancy, error) {
	rows, err := tx.Raw(`
		SELECT
			zone,
			COUNT(*) FILTER (WHERE occupied),
			COUNT(*)
		FROM locations
		GROUP BY zone
		ORDER BY zone
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupancy := make([]ZoneOccupancy, 0)
	for rows.Next() {
		var row ZoneOccupancy
		if err = rows.Scan(&row.Zone, &row.Occupied, &row.Total); err != nil {
			return nil, err
		}
		if row.Total > 0 {
			row.Rate = float64(row.Occupied) / float64(row.Total)
		}
		occupancy = append(occupancy, row)
	}

	return occupancy, rows.Err()
}

func (h SummaryReportQueryHandler) recentActivity(tx *gorm.DB, limit int) ([]RecentActivity, error) {
	rows, err := tx.Raw(`
		SELECT
			p.barcode,
			a.action,
			a.old_status,
			a.new_status,
			a.old_location,
			a.new_location,
			a.recorded_at
		FROM audit_entries a
		JOIN parcels p ON p.id = a.parcel_id
		ORDER BY a.recorded_at DESC, a.seq DESC
		LIMIT ?
	`, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := make([]RecentActivity, 0)
	for rows.Next() {
		var row RecentActivity
		err = rows.Scan(
			&row.Barcode,
			&row.Action,
			&row.OldStatus,
			&row.NewStatus,
			&row.OldLocation,
			&row.NewLocation,
			&row.RecordedAt,
		)
		if err != nil {
			return nil, err
		}
		activity = append(activity, row)
	}

	return activity, rows.Err()
}
