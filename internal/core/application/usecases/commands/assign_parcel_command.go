package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
)

// AssignParcelCommand adds a parcel, addressed by its tracking code, to a shipment.
type AssignParcelCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	trackingCode string

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command to put the parcel with
// trackingCode into a shipment. Both arguments are required.
func NewAssignParcelCommand(shipmentID kernel.UUID, trackingCode string) (AssignParcelCommand, error) {
	cmd := AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTrackingCode(trackingCode),
	); err != nil {
		return AssignParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignParcelCommandIsNotConstructed if validation fails.
func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

// ShipmentID returns the target shipment.
func (c AssignParcelCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TrackingCode returns the trimmed tracking code of the parcel to assign.
func (c AssignParcelCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *AssignParcelCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AssignParcelCommand) setTrackingCode(trackingCode string) error {
	if strings.TrimSpace(trackingCode) == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = strings.TrimSpace(trackingCode)
	return nil
}
