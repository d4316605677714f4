package parcelrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
// The unique index on barcode rejects duplicates at the database level.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateBarcodeError(aggregate.Barcode())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
// Select("*") forces GORM to write zero values too, so clearing the location
// reference on delivery actually nulls the column.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
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

// GetByBarcode retrieves a parcel by its barcode.
func (r *GormParcelRepository) GetByBarcode(ctx context.Context, barcode string) (*parcel.Parcel, error) {
	if barcode == "" {
		return nil, errs.NewValueIsRequiredError("barcode")
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", barcode)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByBarcode reports whether a parcel with the barcode is registered.
func (r *GormParcelRepository) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	if barcode == "" {
		return false, errs.NewValueIsRequiredError("barcode")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("barcode = ?", barcode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
