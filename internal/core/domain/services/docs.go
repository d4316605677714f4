// Package services provides stateless domain services of the warehouse.
//
// Allocator decides which storage category a parcel belongs to based on its
// weight, priority tag and destination. The decision is pure: picking the
// concrete shelf inside the category is the job of the registration use case,
// which runs under a transaction.
package services
