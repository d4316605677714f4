// Package categoryrepo provides data transfer objects and mapping functions for
// the category catalog. Categories are immutable reference rows written only
// by the seeder; the repository exposes reads.
package categoryrepo

import (
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"uniqueIndex;not null"`
	Description   string
	Zone          string `gorm:"uniqueIndex;not null"`
	MaxWeight     float64
	PriorityLevel int
}

// TableName specifies the database table name for category entities.
// Overrides GORM's default naming convention to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

// FromDomain converts a category domain entity to its database representation.
// Exported because the catalog seeder builds category rows outside this package.
func FromDomain(aggregate *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name().String(),
		Description:   aggregate.Description(),
		Zone:          aggregate.Zone(),
		MaxWeight:     aggregate.MaxWeight(),
		PriorityLevel: aggregate.PriorityLevel(),
	}
}

// toDomain converts a database DTO to a category domain entity.
func toDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewCategory(
		id, catalog.CategoryName(dto.Name), dto.Description,
		dto.Zone, dto.MaxWeight, dto.PriorityLevel)
}
