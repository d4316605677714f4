package auditrepo

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append persists a new audit entry. Entries are write-once; there is no
// update or delete path through this repository.
func (r *GormAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
