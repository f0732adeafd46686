package services

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/pkg/errs"
)

// ErrParcelInAnotherShipment is the cause of the Conflict returned by Join.
var ErrParcelInAnotherShipment = errors.New("parcel is assigned to another shipment")

// ShipmentCoordinator is the only writer of parcel-to-shipment membership and
// of shipment totals.
//
// Key responsibilities:
//   - Adding parcels to a shipment, with or without taking them from another one
//   - Replacing the whole member set
//   - Keeping totals equal to the live sum over members
//   - Propagating shipment status to every member parcel
//
// Business rules:
//   - Join refuses a parcel that belongs to a different shipment (Conflict)
//   - Claim takes the parcel even if another shipment holds it
//   - Totals are always recomputed from scratch
//
// Example usage:
//
//	coordinator := services.NewShipmentCoordinator()
//	if err := coordinator.Join(s, p); err != nil {
//	    return err
//	}
//	if err := coordinator.RecomputeTotals(s, members); err != nil {
//	    return err
//	}
type ShipmentCoordinator struct{}

// NewShipmentCoordinator creates a new ShipmentCoordinator instance.
func NewShipmentCoordinator() ShipmentCoordinator {
	return ShipmentCoordinator{}
}

// Join adds p to s.
//
// Returns:
//   - nil when p was unassigned or already a member of s
//   - ConflictError when p belongs to another shipment
func (c ShipmentCoordinator) Join(s *shipment.Shipment, p *parcel.Parcel) error {
	if err := errors.Join(s.Validate(), p.Validate()); err != nil {
		return err
	}
	if p.IsAssigned() && !p.BelongsTo(s.ID()) {
		return errs.NewConflictErrorWithCause("trackingCode", p.TrackingCode(), ErrParcelInAnotherShipment)
	}
	return p.AssignTo(s.ID())
}

// Claim adds p to s, taking it away from any other shipment.
func (c ShipmentCoordinator) Claim(s *shipment.Shipment, p *parcel.Parcel) error {
	if err := errors.Join(s.Validate(), p.Validate()); err != nil {
		return err
	}
	return p.AssignTo(s.ID())
}

// ReplaceMembers makes wanted the member set of s.
//
// Parameters:
//   - s: the shipment being edited
//   - current: parcels that are members of s right now
//   - wanted: parcels that must be members afterwards; they may currently
//     belong to another shipment and are taken from it
//
// Returns:
//   - changed: parcels whose shipment reference was modified and must be saved
//   - members: the resulting member set, in the order of wanted
//   - error: validation error
func (c ShipmentCoordinator) ReplaceMembers(
	s *shipment.Shipment,
	current []*parcel.Parcel,
	wanted []*parcel.Parcel,
) (changed []*parcel.Parcel, members []*parcel.Parcel, err error) {
	if err = s.Validate(); err != nil {
		return nil, nil, err
	}

	keep := make(map[kernel.UUID]struct{}, len(wanted))
	for _, p := range wanted {
		keep[p.ID()] = struct{}{}
	}

	for _, p := range current {
		if _, ok := keep[p.ID()]; ok {
			continue
		}
		p.Unassign()
		changed = append(changed, p)
	}

	seen := make(map[kernel.UUID]struct{}, len(wanted))
	for _, p := range wanted {
		if _, dup := seen[p.ID()]; dup {
			continue
		}
		seen[p.ID()] = struct{}{}

		if !p.BelongsTo(s.ID()) {
			if err = c.Claim(s, p); err != nil {
				return nil, nil, err
			}
			changed = append(changed, p)
		}
		members = append(members, p)
	}

	return changed, members, nil
}

// RecomputeTotals sets the totals of s to the sum over members. Every member
// must belong to s.
func (c ShipmentCoordinator) RecomputeTotals(s *shipment.Shipment, members []*parcel.Parcel) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dims := make([]kernel.Dimensions, 0, len(members))
	for _, p := range members {
		if err := p.Validate(); err != nil {
			return err
		}
		if !p.BelongsTo(s.ID()) {
			return errs.NewValueIsInvalidError("parcel " + p.ID().String() + " is not a member of shipment " + s.ID().String())
		}
		dims = append(dims, p.Dimensions())
	}

	s.RecomputeTotals(dims...)
	return nil
}

// AdvanceStatus sets the status of s and applies the mapped parcel status
// (see ParcelStatusFor) to every member.
//
// Returns:
//   - parcel.Status: the status applied to the members
//   - error: invalid status; nothing is modified in that case
func (c ShipmentCoordinator) AdvanceStatus(
	s *shipment.Shipment,
	members []*parcel.Parcel,
	status shipment.Status,
	at time.Time,
) (parcel.Status, error) {
	if err := s.Validate(); err != nil {
		return parcel.Unknown, err
	}
	if err := status.Validate(); err != nil {
		return parcel.Unknown, err
	}

	target := ParcelStatusFor(status)
	for _, p := range members {
		if err := p.Validate(); err != nil {
			return parcel.Unknown, err
		}
	}

	if err := s.ChangeStatus(status, at); err != nil {
		return parcel.Unknown, err
	}
	for _, p := range members {
		if err := p.ApplyStatus(target, at); err != nil {
			return parcel.Unknown, err
		}
	}

	return target, nil
}
