package ports

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
// The trail is append-only; entries are never updated or deleted.
type AuditRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *audit.Entry) error
}
