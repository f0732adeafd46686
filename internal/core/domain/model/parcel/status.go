package parcel

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
//
//	Registered ──> InWarehouse ──> EnRoute ──> Arrived ──> Delivered
//
// Transitions are driven by the owning shipment and are not enforced here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Registered
	InWarehouse
	EnRoute
	Arrived
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Registered:  "Registered",
		InWarehouse: "InWarehouse",
		EnRoute:     "EnRoute",
		Arrived:     "Arrived",
		Delivered:   "Delivered",
	}
}

// ParseStatus converts a wire name such as "EnRoute" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a parcel status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid parcel status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
