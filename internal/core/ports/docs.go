// Package ports defines the outbound contracts of the warehouse core:
// repositories for parcels, categories, storage locations and audit entries,
// plus the unit of work that binds them into one transaction.
//
// Adapters under internal/adapters/out implement these interfaces; use cases
// depend only on the interfaces.
package ports
