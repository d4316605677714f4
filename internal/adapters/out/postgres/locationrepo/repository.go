package locationrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a location by ID.
func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindFreeByCategory retrieves the free location with the lowest code in the
// category's zone. SELECT ... FOR UPDATE locks the chosen row until the
// surrounding transaction ends, so two concurrent registrations can never
// claim the same shelf.
func (r *GormLocationRepository) FindFreeByCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) (*catalog.Location, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("category_id = ? AND occupied = false", categoryID.Bytes()).
		Order("code").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("free location", categoryID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves occupancy changes to an existing location.
// Select("occupied") limits the write to the one mutable column.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *catalog.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Select("occupied").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
