package shipment

import (
	"errors"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

const nameMaxLength = 100

var (
	// ErrShipmentIsNotConstructed is returned when using a Shipment that was not
	// obtained from NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrNameIsRequired is returned for an empty shipment name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Shipment is a container of parcels travelling together. It is an aggregate
// root that caches the totals of its members and records when it departed
// and arrived.
//
// Key responsibilities:
//   - Holding the shipment name and status
//   - Caching total weight and volume of the current members
//   - Stamping departure and arrival exactly once
//
// Business rules:
//   - Name is required
//   - Totals always equal the sum over the members passed to RecomputeTotals
//   - DepartureDate is set on the first EnRoute, ArrivalDate on the first Arrived
//
// Example usage:
//
//	s, err := shipment.NewShipment(kernel.NewUUID(), "Container 7")
//	if err != nil {
//	    return err
//	}
//	s.RecomputeTotals(p1.Dimensions(), p2.Dimensions())
//	_ = s.ChangeStatus(shipment.EnRoute, time.Now())
type Shipment struct {
	// id uniquely identifies the shipment
	id kernel.UUID
	// name is the group name or container number
	name string
	// status is the coarse shipment state
	status Status
	// totals caches the summed weight and volume of the members
	totals kernel.Dimensions
	// departureDate is set once, on the first EnRoute
	departureDate *time.Time
	// arrivalDate is set once, on the first Arrived
	arrivalDate *time.Time
	// createdAt is the creation time
	createdAt time.Time
	// guard ensures the shipment was properly constructed
	guard guard.ConstructorGuard
}

// NewShipment creates an empty shipment in Planning.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - name: required display name
//
// Returns:
//   - *Shipment: the new shipment with zero totals and createdAt set to now (UTC)
//   - error: joined validation errors
func NewShipment(id kernel.UUID, name string) (*Shipment, error) {
	return RestoreShipment(id, name, Planning, kernel.Dimensions{}, nil, nil, time.Now().UTC())
}

// RestoreShipment reconstructs a Shipment from persistent storage.
//
// Parameters:
//   - id, name, status: persisted identity and state
//   - totals: cached total weight and volume
//   - departureDate, arrivalDate: travel stamps, nil when not reached yet
//   - createdAt: creation time
//
// Returns:
//   - *Shipment: restored aggregate
//   - error: validation error if any parameter is invalid
func RestoreShipment(
	id kernel.UUID,
	name string,
	status Status,
	totals kernel.Dimensions,
	departureDate *time.Time,
	arrivalDate *time.Time,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		totals:        totals,
		departureDate: departureDate,
		arrivalDate:   arrivalDate,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks that the Shipment was built by a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares shipments by ID.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Name returns the display name.
func (s *Shipment) Name() string {
	return s.name
}

// Status returns the current state.
func (s *Shipment) Status() Status {
	return s.status
}

// Totals returns the cached total weight and volume.
func (s *Shipment) Totals() kernel.Dimensions {
	return s.totals
}

// DepartureDate returns when the shipment first went EnRoute, or nil.
func (s *Shipment) DepartureDate() *time.Time {
	return s.departureDate
}

// ArrivalDate returns when the shipment first Arrived, or nil.
func (s *Shipment) ArrivalDate() *time.Time {
	return s.arrivalDate
}

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Rename changes the display name.
func (s *Shipment) Rename(name string) error {
	return s.setName(name)
}

// RecomputeTotals replaces the cached totals with the sum of the given member
// dimensions. Calling it again with the same members is a no-op.
func (s *Shipment) RecomputeTotals(members ...kernel.Dimensions) {
	s.totals = kernel.SumDimensions(members...)
}

// ChangeStatus sets the status unconditionally and stamps travel times.
//
// Business rules:
//   - Any valid status is accepted, including the current one
//   - EnRoute stamps DepartureDate if it is not set yet
//   - Arrived stamps ArrivalDate if it is not set yet
//
// Returns:
//   - nil on success
//   - invalid-value error for Unknown or undefined statuses
//
// Example:
//
//	if err := s.ChangeStatus(shipment.EnRoute, time.Now()); err != nil {
//	    return err
//	}
//	s.DepartureDate() // now; unchanged by later EnRoute calls
func (s *Shipment) ChangeStatus(status Status, at time.Time) error {
	if err := s.setStatus(status); err != nil {
		return err
	}

	at = at.UTC()
	switch status {
	case EnRoute:
		if s.departureDate == nil {
			s.departureDate = &at
		}
	case Arrived:
		if s.arrivalDate == nil {
			s.arrivalDate = &at
		}
	case Unknown, Planning, Completed:
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := len([]rune(name)); n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, nameMaxLength)
	}
	s.name = name
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
