package queries

import (
	"context"
	"database/sql"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindParcelQueryHandler looks up a parcel's tracking view by barcode.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type FindParcelQueryHandler struct {
	db *gorm.DB
}

// NewFindParcelQueryHandler creates a handler for parcel lookup queries.
// Requires a GORM database connection for query execution.
func NewFindParcelQueryHandler(db *gorm.DB) FindParcelQueryHandler {
	return FindParcelQueryHandler{db: db}
}

// Handle executes the lookup. Joins the parcel with its category and, when
// present, its storage location. Returns ObjectNotFoundError when no parcel
// carries the barcode.
func (h FindParcelQueryHandler) Handle(
	ctx context.Context,
	query FindParcelQuery,
) (FindParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.barcode,
			p.status,
			c.name,
			c.zone,
			l.code,
			p.destination,
			p.priority,
			p.weight,
			p.received_at
		FROM parcels p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN locations l ON l.id = p.location_id
		WHERE p.barcode = ?
	`, query.Barcode()).Rows()
	if err != nil {
		return FindParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return FindParcelQueryResponse{}, err
		}
		return FindParcelQueryResponse{}, errs.NewObjectNotFoundError("barcode", query.Barcode())
	}

	var response FindParcelQueryResponse
	var id uuid.UUID
	var locationCode sql.NullString

	err = rows.Scan(
		&id,
		&response.Barcode,
		&response.Status,
		&response.Category,
		&response.Zone,
		&locationCode,
		&response.Destination,
		&response.Priority,
		&response.Weight,
		&response.ReceivedAt,
	)
	if err != nil {
		return FindParcelQueryResponse{}, err
	}

	parcelID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return FindParcelQueryResponse{}, idErr
	}
	response.ID = parcelID

	if locationCode.Valid {
		response.LocationCode = locationCode.String
	}

	return response, nil
}
