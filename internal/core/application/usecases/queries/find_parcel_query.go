// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrFindParcelQueryIsNotConstructed = errors.New(
		"FindParcelQuery must be created via NewFindParcelQuery constructor",
	)
	ErrBarcodeIsRequired = errors.New("barcode is required")
)

// FindParcelQuery retrieves the full tracking view of one parcel by barcode:
// its status, category, zone and current shelf assignment.
type FindParcelQuery struct {
	barcode string

	guard guard.ConstructorGuard
}

// NewFindParcelQuery creates a query to look up a parcel by its barcode.
func NewFindParcelQuery(barcode string) (FindParcelQuery, error) {
	if barcode == "" {
		return FindParcelQuery{}, ErrBarcodeIsRequired
	}

	return FindParcelQuery{
		barcode: barcode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrFindParcelQueryIsNotConstructed if validation fails.
func (q FindParcelQuery) Validate() error {
	return q.guard.Validate(ErrFindParcelQueryIsNotConstructed)
}

// Barcode returns the barcode being looked up.
func (q FindParcelQuery) Barcode() string {
	return q.barcode
}

// FindParcelQueryResponse is the read model of one tracked parcel.
// LocationCode is empty once the parcel is delivered.
type FindParcelQueryResponse struct {
	ID           kernel.UUID
	Barcode      string
	Status       string
	Category     string
	Zone         string
	LocationCode string
	Destination  string
	Priority     string
	Weight       float64
	ReceivedAt   time.Time
}
