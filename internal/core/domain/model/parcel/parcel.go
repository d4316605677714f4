package parcel

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Parcel is the aggregate root for a physical package in the warehouse.
//
// Invariants:
//   - barcode, destination and priority tag are non-empty
//   - dimensions are valid (all components positive)
//   - the location reference is set exactly while the status occupies space;
//     a Delivered parcel holds no location
//   - status transitions follow the Status transition table
type Parcel struct {
	id          kernel.UUID
	barcode     string
	dimensions  Dimensions
	destination string
	priority    string
	categoryID  kernel.UUID
	locationID  *kernel.UUID
	status      Status
	receivedAt  time.Time

	guard kernel.ConstructorGuard
}

// NewParcel creates a newly registered Parcel: status Stored, occupying the
// given location, received now. Registration is the only way a parcel enters
// the system, so Received is never persisted as a current status.
func NewParcel(
	id kernel.UUID,
	barcode string,
	dimensions Dimensions,
	destination string,
	priority string,
	categoryID kernel.UUID,
	locationID kernel.UUID,
) (*Parcel, error) {
	parcel := &Parcel{
		status:     Stored,
		receivedAt: time.Now().UTC(),
		guard:      kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setBarcode(barcode),
		parcel.setDimensions(dimensions),
		parcel.setDestination(destination),
		parcel.setPriority(priority),
		parcel.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	if err := locationID.Validate(); err != nil {
		return nil, err
	}
	parcel.locationID = &locationID

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel from persistence, including its status,
// optional location reference and original intake timestamp. The
// location-iff-occupying-space invariant is re-checked so corrupt rows are
// rejected at the boundary.
func RestoreParcel(
	id kernel.UUID,
	barcode string,
	dimensions Dimensions,
	destination string,
	priority string,
	categoryID kernel.UUID,
	locationID *kernel.UUID,
	status Status,
	receivedAt time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		receivedAt: receivedAt,
		guard:      kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setBarcode(barcode),
		parcel.setDimensions(dimensions),
		parcel.setDestination(destination),
		parcel.setPriority(priority),
		parcel.setCategoryID(categoryID),
		parcel.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := parcel.setLocationID(locationID); err != nil {
		return nil, err
	}

	return parcel, nil
}

// Validate ensures the Parcel was created via one of its constructors.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Barcode returns the unique external identifier.
func (p *Parcel) Barcode() string {
	return p.barcode
}

// Dimensions returns the parcel's weight and physical size.
func (p *Parcel) Dimensions() Dimensions {
	return p.dimensions
}

// Destination returns the delivery destination.
func (p *Parcel) Destination() string {
	return p.destination
}

// Priority returns the caller-supplied priority tag.
func (p *Parcel) Priority() string {
	return p.priority
}

// CategoryID returns the identity of the assigned category.
func (p *Parcel) CategoryID() kernel.UUID {
	return p.categoryID
}

// LocationID returns the identity of the occupied storage location, or nil
// once the parcel is delivered.
func (p *Parcel) LocationID() *kernel.UUID {
	return p.locationID
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// ReceivedAt returns the intake timestamp.
func (p *Parcel) ReceivedAt() time.Time {
	return p.receivedAt
}

// TransitionTo moves the parcel to the next lifecycle status, enforcing the
// transition table. Transitioning to Delivered clears the location reference;
// the caller owns releasing the corresponding Location under the same
// transaction.
func (p *Parcel) TransitionTo(next Status) error {
	newStatus, err := p.status.TransitionTo(next)
	if err != nil {
		return err
	}

	p.status = newStatus
	if !newStatus.OccupiesSpace() {
		p.locationID = nil
	}
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setBarcode(barcode string) error {
	if barcode == "" {
		return errs.NewValueIsRequiredError("barcode")
	}
	p.barcode = barcode
	return nil
}

func (p *Parcel) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}

func (p *Parcel) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	p.destination = destination
	return nil
}

func (p *Parcel) setPriority(priority string) error {
	if priority == "" {
		return errs.NewValueIsRequiredError("priority")
	}
	p.priority = priority
	return nil
}

func (p *Parcel) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// setLocationID cross-validates the location reference against the status:
// a status that occupies space requires a location and vice versa.
func (p *Parcel) setLocationID(locationID *kernel.UUID) error {
	occupies := p.status.OccupiesSpace()

	if occupies && locationID == nil {
		return errs.NewValueIsRequiredErrorWithCause("location",
			fmt.Errorf("status %s requires a storage location", p.status))
	}
	if !occupies && locationID != nil {
		return errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("status %s cannot hold a storage location", p.status))
	}

	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}

	p.locationID = locationID
	return nil
}
