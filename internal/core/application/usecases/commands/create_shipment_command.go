package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrShipmentNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateShipmentCommand creates a shipment with an optional initial set of parcels.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), "Container 7", []kernel.UUID{p1, p2})
//	if err != nil {
//	    return err
//	}
//	s, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	name       string
	parcelIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the name and parcel IDs. Repeated IDs
// are kept once.
func NewCreateShipmentCommand(shipmentID kernel.UUID, name string, parcelIDs []kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setName(name),
		cmd.setParcelIDs(parcelIDs),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Name returns the trimmed shipment name.
func (c CreateShipmentCommand) Name() string {
	return c.name
}

// ParcelIDs returns a copy of the requested initial members.
func (c CreateShipmentCommand) ParcelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.parcelIDs...)
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrShipmentNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateShipmentCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	ids, err := validParcelIDs(parcelIDs)
	if err != nil {
		return err
	}
	c.parcelIDs = ids
	return nil
}

// validParcelIDs copies ids in their first-seen order, dropping repeats and
// rejecting nil UUIDs.
func validParcelIDs(ids []kernel.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("parcelIds", err)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
