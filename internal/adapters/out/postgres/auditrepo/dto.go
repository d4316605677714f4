// Package auditrepo provides data transfer objects and mapping functions for
// the audit trail. The table is append-only; nothing updates or deletes rows.
package auditrepo

import (
	"time"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
// Seq is a database-assigned sequence used to break ties between entries
// recorded within the same timestamp, giving the trail a total replay order.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;uniqueIndex"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Action      string    `gorm:"not null"`
	OldStatus   string
	NewStatus   string `gorm:"not null"`
	OldLocation string
	NewLocation string
	Note        string
	RecordedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
// Overrides GORM's default naming convention to use "audit_entries".
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
// Seq stays zero here; the database assigns it on insert.
func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:          entry.ID().Bytes(),
		ParcelID:    entry.ParcelID().Bytes(),
		Action:      string(entry.Action()),
		OldStatus:   entry.OldStatus(),
		NewStatus:   entry.NewStatus(),
		OldLocation: entry.OldLocation(),
		NewLocation: entry.NewLocation(),
		Note:        entry.Note(),
		RecordedAt:  entry.RecordedAt(),
	}
}

// toDomain converts a database DTO to an audit entry using RestoreEntry.
func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id, parcelID, audit.Action(dto.Action),
		dto.OldStatus, dto.NewStatus, dto.OldLocation, dto.NewLocation,
		dto.Note, dto.RecordedAt)
}
