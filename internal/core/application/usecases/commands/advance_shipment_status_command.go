package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/shipment"
	"cargo/internal/pkg/guard"
)

var ErrAdvanceShipmentStatusCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusCommand must be created via NewAdvanceShipmentStatusCommand constructor",
)

// AdvanceShipmentStatusCommand moves a shipment to a new status.
//
// Example:
//
//	status, err := shipment.ParseStatus("EnRoute")
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewAdvanceShipmentStatusCommand(shipmentID, status)
type AdvanceShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentStatusCommand rejects Unknown and undefined statuses.
func NewAdvanceShipmentStatusCommand(shipmentID kernel.UUID, status shipment.Status) (AdvanceShipmentStatusCommand, error) {
	cmd := AdvanceShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose status changes.
func (c AdvanceShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the requested shipment status.
func (c AdvanceShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *AdvanceShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AdvanceShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
