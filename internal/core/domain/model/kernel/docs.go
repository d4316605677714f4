// Package kernel contains the shared building blocks of the warehouse domain
// model: the UUID value object used as identity for every entity and the
// ConstructorGuard that enforces constructor usage for domain objects.
//
// Package and audit identities are random version 4 UUIDs. Seeded reference
// data (categories, storage locations) uses deterministic name-based UUIDs
// derived from natural keys, which makes catalog provisioning idempotent:
// re-seeding produces the same identities and conflicts away silently.
package kernel
