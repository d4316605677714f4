// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The barcode carries a unique constraint so duplicate registrations are
// rejected by the database even under concurrent writers.
type ParcelDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode     string    `gorm:"uniqueIndex;not null"`
	Weight      float64
	Length      float64
	Width       float64
	Height      float64
	Destination string
	Priority    string
	CategoryID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	LocationID  *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"index;not null"`
	ReceivedAt  time.Time
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var locationID *uuid.UUID
	if id := aggregate.LocationID(); id != nil {
		raw := id.Bytes()
		locationID = &raw
	}

	return ParcelDTO{
		ID:          aggregate.ID().Bytes(),
		Barcode:     aggregate.Barcode(),
		Weight:      aggregate.Dimensions().Weight(),
		Length:      aggregate.Dimensions().Length(),
		Width:       aggregate.Dimensions().Width(),
		Height:      aggregate.Dimensions().Height(),
		Destination: aggregate.Destination(),
		Priority:    aggregate.Priority(),
		CategoryID:  aggregate.CategoryID().Bytes(),
		LocationID:  locationID,
		Status:      aggregate.Status().String(),
		ReceivedAt:  aggregate.ReceivedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	var locationID *kernel.UUID
	if dto.LocationID != nil {
		lID, locationErr := kernel.UUIDFromBytes((*dto.LocationID)[:])
		if locationErr != nil {
			return nil, locationErr
		}

		locationID = &lID
	}

	dims, err := parcel.NewDimensions(dto.Weight, dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromLabel(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, dto.Barcode, dims, dto.Destination, dto.Priority,
		categoryID, locationID, status, dto.ReceivedAt)
}
