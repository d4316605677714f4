// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// RegistrationUoW manages transactions for parcel registration.
	// Registration touches every aggregate: it reads the catalog, claims a
	// location, creates the parcel and appends the audit entry atomically.
	RegistrationUoW interface {
		TxManager
		ParcelRepoFactory
		LocationRepoFactory
		CategoryRepoFactory
		AuditRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// StatusUpdateUoW manages transactions for status changes.
	// A status change may release the parcel's location and always appends
	// an audit entry.
	StatusUpdateUoW interface {
		TxManager
		ParcelRepoFactory
		LocationRepoFactory
		AuditRepoFactory
	}

	// StatusUpdateUoWFactory creates new status update unit of work instances.
	StatusUpdateUoWFactory interface {
		Create() StatusUpdateUoW
	}
)
