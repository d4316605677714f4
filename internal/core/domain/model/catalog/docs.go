// Package catalog provides the warehouse reference data: package categories
// and the fixed grid of physical storage locations bound to them.
//
// The package includes:
//   - Category: immutable reference entity describing a handling class
//     (zone, weight ceiling, priority level)
//   - Location: a physical slot with binary occupancy, the one entity in this
//     package that mutates at runtime
//   - CategoriesSeed / LocationsSeed: deterministic pure functions describing
//     the fixed reference data provisioned at startup
//
// Key business rules:
//   - categories are seeded once and never mutated at runtime
//   - a location holds at most one package at a time; Occupy on an occupied
//     location and Release on a free one are domain errors
//   - location codes are derived deterministically from zone, aisle and shelf
//     and are unique across the warehouse
package catalog
