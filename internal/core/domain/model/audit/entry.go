package audit

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through one of its factory functions.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewRegisteredEntry, NewStatusUpdateEntry or RestoreEntry constructor")

// Action identifies the kind of event an audit entry records.
type Action string

const (
	// ActionRegistered records a parcel entering the warehouse.
	ActionRegistered Action = "REGISTERED"

	// ActionStatusUpdate records a lifecycle status change.
	ActionStatusUpdate Action = "STATUS_UPDATE"
)

// Validate checks that the action is one of the defined kinds.
func (a Action) Validate() error {
	switch a {
	case ActionRegistered, ActionStatusUpdate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a known audit action", string(a)))
	}
}

// Entry is an immutable audit record. Old values are empty for registration
// entries; location codes are empty when the parcel holds no location on the
// corresponding side of the change.
type Entry struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	action      Action
	oldStatus   string
	newStatus   string
	oldLocation string
	newLocation string
	note        string
	recordedAt  time.Time

	guard kernel.ConstructorGuard
}

// NewRegisteredEntry creates the audit record for a parcel registration.
func NewRegisteredEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	status string,
	locationCode string,
	note string,
) (*Entry, error) {
	return newEntry(id, parcelID, ActionRegistered,
		"", status, "", locationCode, note, time.Now().UTC())
}

// NewStatusUpdateEntry creates the audit record for a status change. Location
// codes may be empty when the parcel holds no location on that side of the
// transition.
func NewStatusUpdateEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	oldStatus string,
	newStatus string,
	oldLocation string,
	newLocation string,
	note string,
) (*Entry, error) {
	return newEntry(id, parcelID, ActionStatusUpdate,
		oldStatus, newStatus, oldLocation, newLocation, note, time.Now().UTC())
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	action Action,
	oldStatus string,
	newStatus string,
	oldLocation string,
	newLocation string,
	note string,
	recordedAt time.Time,
) (*Entry, error) {
	return newEntry(id, parcelID, action,
		oldStatus, newStatus, oldLocation, newLocation, note, recordedAt)
}

func newEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	action Action,
	oldStatus string,
	newStatus string,
	oldLocation string,
	newLocation string,
	note string,
	recordedAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		action.Validate(),
	); err != nil {
		return nil, err
	}

	if newStatus == "" {
		return nil, errs.NewValueIsRequiredError("newStatus")
	}
	if action == ActionStatusUpdate && oldStatus == "" {
		return nil, errs.NewValueIsRequiredError("oldStatus")
	}

	return &Entry{
		id:          id,
		parcelID:    parcelID,
		action:      action,
		oldStatus:   oldStatus,
		newStatus:   newStatus,
		oldLocation: oldLocation,
		newLocation: newLocation,
		note:        note,
		recordedAt:  recordedAt,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Entry was created via one of its constructors.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identity of the parcel the entry belongs to.
func (e *Entry) ParcelID() kernel.UUID {
	return e.parcelID
}

// Action returns the kind of event recorded.
func (e *Entry) Action() Action {
	return e.action
}

// OldStatus returns the status label before the change, empty for
// registration entries.
func (e *Entry) OldStatus() string {
	return e.oldStatus
}

// NewStatus returns the status label after the change.
func (e *Entry) NewStatus() string {
	return e.newStatus
}

// OldLocation returns the location code before the change, if any.
func (e *Entry) OldLocation() string {
	return e.oldLocation
}

// NewLocation returns the location code after the change, if any.
func (e *Entry) NewLocation() string {
	return e.newLocation
}

// Note returns the free-form annotation.
func (e *Entry) Note() string {
	return e.note
}

// RecordedAt returns when the change was recorded.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}
