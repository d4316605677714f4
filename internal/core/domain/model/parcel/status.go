package parcel

import (
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel. It implements a state
// machine with an explicit transition table:
//
//	Received ──> Stored ──┬──> InTransit ──> Delivered
//	                      └─────────────────────┘
//
// Delivered is terminal and is the one state with special semantics: reaching
// it releases the parcel's storage location.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the nominal intake state. Registration supersedes it
	// immediately: a parcel is persisted already Stored with its location.
	Received

	// Stored indicates the parcel occupies a storage location.
	Stored

	// InTransit indicates the parcel left its shelf for delivery but still
	// reserves its location.
	InTransit

	// Delivered indicates the parcel left the warehouse. Terminal; the
	// storage location is released on this transition.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Received:  "Received",
		Stored:    "Stored",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// transitions is the allowed-successor table. Statuses absent from a set are
// rejected by TransitionTo.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Received:  {Stored},
		Stored:    {InTransit, Delivered},
		InTransit: {Delivered},
		Delivered: {},
	}
}

// StatusFromLabel parses a caller-supplied status label case-insensitively.
// "in transit", "in-transit" and "intransit" all resolve to InTransit.
// Returns a ValueIsInvalidError for unknown labels.
func StatusFromLabel(label string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")

	for status, name := range getStatusStrings() {
		if status == Unknown {
			continue
		}
		if strings.ToLower(name) == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", label))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer and is safe on any
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	next, ok := transitions()[s]
	return ok && len(next) == 0
}

// OccupiesSpace reports whether a parcel in this status holds a storage
// location. Every valid non-Delivered status occupies space.
func (s Status) OccupiesSpace() bool {
	return s.Validate() == nil && s != Delivered
}

// TransitionTo validates the transition to next against the table and returns
// the new status. Returns a ValueIsInvalidError for transitions outside the
// table, including any transition out of Delivered.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	for _, allowed := range transitions()[s] {
		if next == allowed {
			return next, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status transition",
		fmt.Errorf("%s -> %s is not allowed", s, next))
}
