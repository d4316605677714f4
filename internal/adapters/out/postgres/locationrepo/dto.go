// Package locationrepo provides data transfer objects and mapping functions for
// storage location persistence. Locations are seeded reference rows whose only
// mutable column is the occupancy flag.
package locationrepo

import (
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting storage locations.
// The composite index on (category_id, occupied) backs the free-location lookup;
// ordering by code inside that index slice picks a deterministic shelf.
type LocationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"uniqueIndex;not null"`
	Zone       string    `gorm:"index;not null"`
	Aisle      int
	Shelf      int
	CategoryID uuid.UUID `gorm:"type:uuid;index:idx_locations_category_occupied;not null"`
	Occupied   bool      `gorm:"index:idx_locations_category_occupied"`
}

// TableName specifies the database table name for location entities.
// Overrides GORM's default naming convention to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

// FromDomain converts a location domain entity to its database representation.
// Exported because the catalog seeder builds location rows outside this package.
func FromDomain(aggregate *catalog.Location) LocationDTO {
	return LocationDTO{
		ID:         aggregate.ID().Bytes(),
		Code:       aggregate.Code(),
		Zone:       aggregate.Zone(),
		Aisle:      aggregate.Aisle(),
		Shelf:      aggregate.Shelf(),
		CategoryID: aggregate.CategoryID().Bytes(),
		Occupied:   aggregate.IsOccupied(),
	}
}

// toDomain converts a database DTO to a location domain entity using RestoreLocation.
func toDomain(dto LocationDTO) (*catalog.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreLocation(id, dto.Zone, dto.Aisle, dto.Shelf, categoryID, dto.Occupied)
}
