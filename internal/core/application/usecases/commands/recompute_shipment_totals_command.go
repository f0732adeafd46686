package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrRecomputeShipmentTotalsCommandIsNotConstructed = errors.New(
	"RecomputeShipmentTotalsCommand must be created via NewRecomputeShipmentTotalsCommand constructor",
)

// RecomputeShipmentTotalsCommand refreshes the cached weight and volume of a
// shipment from its live members. Safe to repeat.
type RecomputeShipmentTotalsCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecomputeShipmentTotalsCommand creates a command to resum a shipment.
func NewRecomputeShipmentTotalsCommand(shipmentID kernel.UUID) (RecomputeShipmentTotalsCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return RecomputeShipmentTotalsCommand{}, err
	}

	return RecomputeShipmentTotalsCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeShipmentTotalsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeShipmentTotalsCommandIsNotConstructed)
}

// ShipmentID returns the shipment to recompute.
func (c RecomputeShipmentTotalsCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
