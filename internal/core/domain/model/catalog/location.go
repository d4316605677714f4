package catalog

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrLocationAlreadyOccupied indicates an attempt to place a package into
	// a location that already holds one.
	ErrLocationAlreadyOccupied = errors.New("location is already occupied")

	// ErrLocationNotOccupied indicates an attempt to release a location that
	// holds no package.
	ErrLocationNotOccupied = errors.New("location is not occupied")

	// ErrLocationIsNotConstructed is returned when a Location instance was not
	// created through NewLocation or RestoreLocation.
	ErrLocationIsNotConstructed = errors.New(
		"Location must be created via NewLocation or RestoreLocation constructor")
)

// Location is a physical storage slot in the warehouse grid. Each location
// belongs to exactly one category's zone and holds at most one package at a
// time: the occupied flag is the ledger's source of truth for slot
// availability.
//
// Locations are pre-provisioned at initialization and never created or
// destroyed afterwards; only the occupancy flag changes at runtime.
type Location struct {
	id         kernel.UUID
	code       string
	zone       string
	aisle      int
	shelf      int
	categoryID kernel.UUID
	occupied   bool

	guard kernel.ConstructorGuard
}

// LocationCode derives the unique slot code from its physical coordinates,
// e.g. zone "D", aisle 3, shelf 2 yields "D03-02".
func LocationCode(zone string, aisle, shelf int) string {
	return fmt.Sprintf("%s%02d-%02d", zone, aisle, shelf)
}

// NewLocation creates an unoccupied Location with validation. The code is
// derived from zone, aisle and shelf; the id is expected to be the
// deterministic code-based UUID produced by the seed (see LocationsSeed).
func NewLocation(id kernel.UUID, zone string, aisle, shelf int, categoryID kernel.UUID) (*Location, error) {
	location := &Location{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setID(id),
		location.setZone(zone),
		location.setAisle(aisle),
		location.setShelf(shelf),
		location.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	location.code = LocationCode(zone, aisle, shelf)
	return location, nil
}

// RestoreLocation reconstructs a Location from persistence, including its
// occupancy state.
func RestoreLocation(
	id kernel.UUID, zone string, aisle, shelf int, categoryID kernel.UUID, occupied bool,
) (*Location, error) {
	location, err := NewLocation(id, zone, aisle, shelf, categoryID)
	if err != nil {
		return nil, err
	}

	location.occupied = occupied
	return location, nil
}

// Validate ensures the Location was created via one of its constructors.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares two locations by identity.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Code returns the unique slot code, e.g. "A01-03".
func (l *Location) Code() string {
	return l.code
}

// Zone returns the zone code the location belongs to.
func (l *Location) Zone() string {
	return l.zone
}

// Aisle returns the 1-based aisle index within the zone.
func (l *Location) Aisle() int {
	return l.aisle
}

// Shelf returns the 1-based shelf index within the aisle.
func (l *Location) Shelf() int {
	return l.shelf
}

// CategoryID returns the identity of the owning category.
func (l *Location) CategoryID() kernel.UUID {
	return l.categoryID
}

// IsOccupied reports whether a package currently holds this location.
func (l *Location) IsOccupied() bool {
	return l.occupied
}

// Occupy marks the location as holding a package.
// Returns ErrLocationAlreadyOccupied if it already holds one: a slot can
// never be assigned to two packages.
func (l *Location) Occupy() error {
	if l.occupied {
		return ErrLocationAlreadyOccupied
	}

	l.occupied = true
	return nil
}

// Release marks the location as free after its package is delivered.
// Returns ErrLocationNotOccupied if the location holds no package.
func (l *Location) Release() error {
	if !l.occupied {
		return ErrLocationNotOccupied
	}

	l.occupied = false
	return nil
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}
	l.zone = zone
	return nil
}

func (l *Location) setAisle(aisle int) error {
	if aisle < 1 {
		return errs.NewValueIsInvalidErrorWithCause("aisle",
			fmt.Errorf("%d is not greater than 0", aisle))
	}
	l.aisle = aisle
	return nil
}

func (l *Location) setShelf(shelf int) error {
	if shelf < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shelf",
			fmt.Errorf("%d is not greater than 0", shelf))
	}
	l.shelf = shelf
	return nil
}

func (l *Location) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	l.categoryID = categoryID
	return nil
}
