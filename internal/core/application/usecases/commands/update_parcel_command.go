package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand edits the tracking code, dimensions and price of a parcel.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	trackingCode string
	dimensions   kernel.Dimensions
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand validates the edited tracking code, measures and price.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	trackingCode string,
	weight float64,
	volume float64,
	price decimal.Decimal,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingCode(trackingCode),
		cmd.setDimensions(weight, volume),
		cmd.setPrice(price),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to edit.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingCode returns the new tracking code.
func (c UpdateParcelCommand) TrackingCode() string {
	return c.trackingCode
}

// Dimensions returns the new weight and volume.
func (c UpdateParcelCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// Price returns the new declared value.
func (c UpdateParcelCommand) Price() decimal.Decimal {
	return c.price
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setTrackingCode(trackingCode string) error {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *UpdateParcelCommand) setDimensions(weight, volume float64) error {
	dims, err := kernel.NewDimensions(weight, volume)
	if err != nil {
		return err
	}
	c.dimensions = dims
	return nil
}

func (c *UpdateParcelCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", nil)
	}
	c.price = price
	return nil
}
