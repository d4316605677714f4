package ports

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
)

// LocationRepository defines the persistence contract for storage locations.
type LocationRepository interface {
	// Get retrieves a location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Location, error)

	// FindFreeByCategory retrieves the free location with the lowest code in
	// the category's zone, locking the row for update so concurrent
	// registrations cannot claim the same shelf. Must run inside an active
	// transaction. Returns ObjectNotFoundError when the zone is full.
	FindFreeByCategory(ctx context.Context, categoryID kernel.UUID) (*catalog.Location, error)

	// Update persists occupancy changes to an existing location.
	Update(ctx context.Context, aggregate *catalog.Location) error
}
