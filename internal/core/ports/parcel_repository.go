package ports

import (
	"context"

	"warehouse/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// Fails if a parcel with the same barcode already exists.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// GetByBarcode retrieves a parcel by its barcode.
	// Returns ObjectNotFoundError when no parcel carries the barcode.
	GetByBarcode(ctx context.Context, barcode string) (*parcel.Parcel, error)

	// ExistsByBarcode reports whether a parcel with the barcode is already
	// registered. Used to reject duplicates before allocating a location.
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)
}
