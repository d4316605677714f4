package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/auditrepo"
	"warehouse/internal/adapters/out/postgres/categoryrepo"
	"warehouse/internal/adapters/out/postgres/locationrepo"
	"warehouse/internal/adapters/out/postgres/parcelrepo"
	"warehouse/internal/core/domain/model/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates or updates the database schema for all warehouse tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&categoryrepo.CategoryDTO{},
		&locationrepo.LocationDTO{},
		&parcelrepo.ParcelDTO{},
		&auditrepo.EntryDTO{},
	)
}

// SeedCatalog provisions the category catalog and the storage grid.
// Identities are deterministic name-based UUIDs and inserts use ON CONFLICT
// DO NOTHING, so seeding is idempotent: restarting the service never
// duplicates reference rows or resets occupancy of existing locations.
func SeedCatalog(ctx context.Context, db *gorm.DB, grid catalog.GridConfig) error {
	categories := catalog.CategoriesSeed()
	locations, err := catalog.LocationsSeed(categories, grid)
	if err != nil {
		return err
	}

	categoryRows := make([]categoryrepo.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoryRows = append(categoryRows, categoryrepo.FromDomain(category))
	}

	locationRows := make([]locationrepo.LocationDTO, 0, len(locations))
	for _, location := range locations {
		locationRows = append(locationRows, locationrepo.FromDomain(location))
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&categoryRows).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&locationRows).Error
	})
}
