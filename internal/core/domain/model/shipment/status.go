package shipment

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status is the coarse state of a shipment.
//
//	Planning ──> EnRoute ──> Arrived ──> Completed
//
// The order above is the expected flow. It is not enforced: operators may
// repeat or skip states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planning is the initial status: parcels are being gathered.
	Planning

	// EnRoute means the shipment has left the warehouse.
	EnRoute

	// Arrived means the shipment reached the destination warehouse.
	Arrived

	// Completed means every parcel has been handed over.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Planning:  "Planning",
		EnRoute:   "EnRoute",
		Arrived:   "Arrived",
		Completed: "Completed",
	}
}

// ParseStatus converts a wire name such as "EnRoute" into a Status.
//
// Returns an invalid-value error for "Unknown" and for any unrecognised name.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipment status", s))
}

// Validate checks if the Status value is one of the four defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
