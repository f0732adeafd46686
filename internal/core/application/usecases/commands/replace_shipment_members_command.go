package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrReplaceShipmentMembersCommandIsNotConstructed = errors.New(
	"ReplaceShipmentMembersCommand must be created via NewReplaceShipmentMembersCommand constructor",
)

// ReplaceShipmentMembersCommand renames a shipment and sets its full member list.
type ReplaceShipmentMembersCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	name       string
	parcelIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReplaceShipmentMembersCommand validates the new name and member list.
// Repeated IDs are kept once.
func NewReplaceShipmentMembersCommand(
	shipmentID kernel.UUID,
	name string,
	parcelIDs []kernel.UUID,
) (ReplaceShipmentMembersCommand, error) {
	cmd := ReplaceShipmentMembersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setName(name),
		cmd.setParcelIDs(parcelIDs),
	); err != nil {
		return ReplaceShipmentMembersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceShipmentMembersCommand) Validate() error {
	return c.guard.Validate(ErrReplaceShipmentMembersCommandIsNotConstructed)
}

// ShipmentID returns the shipment being edited.
func (c ReplaceShipmentMembersCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Name returns the new shipment name.
func (c ReplaceShipmentMembersCommand) Name() string {
	return c.name
}

// ParcelIDs returns a copy of the wanted member list.
func (c ReplaceShipmentMembersCommand) ParcelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.parcelIDs...)
}

func (c *ReplaceShipmentMembersCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *ReplaceShipmentMembersCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrShipmentNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *ReplaceShipmentMembersCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	ids, err := validParcelIDs(parcelIDs)
	if err != nil {
		return err
	}
	c.parcelIDs = ids
	return nil
}
