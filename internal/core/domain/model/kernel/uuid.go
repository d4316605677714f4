package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one
// of the constructor functions. It is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, NamedUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object representing a universally unique identifier.
// It wraps github.com/google/uuid to provide domain-specific behavior and
// immutability. The zero value is invalid and must be constructed via
// NewUUID, NamedUUID, UUIDFromString, or UUIDFromBytes.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	categoryID := kernel.NamedUUID("category/Heavy")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is the primary way to
// create identifiers for packages and audit entries.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// NamedUUID derives a deterministic UUID (version 5, SHA-1) from a natural
// key. The same name always yields the same UUID, so seeded reference data
// keeps a stable identity across runs.
//
// Example:
//
//	id := kernel.NamedUUID("location/A01-01")
func NamedUUID(name string) UUID {
	return UUID{
		id: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
	}
}

// UUIDFromString parses a UUID from its standard string representation.
// Returns an error if the string is not a valid UUID format. Typically used
// when reconstructing entities from persistence or external input.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, as stored in the
// database. Returns an error for malformed input or the nil UUID.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// representation.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value for persistence adapters.
// For a raw byte slice, slice the result: id.Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs represent the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID and nil
// for any constructor-produced value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
