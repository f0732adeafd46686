package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrTrackingCodeIsRequired = errs.NewValueIsRequiredError("trackingCode")
	ErrClientRefIsRequired    = errs.NewValueIsRequiredError("client")
)

// CreateParcelCommand represents warehouse intake of a new parcel.
//
// The owning client is given as clientRef: either the client's UUID or its
// human code (A#####), whichever the operator has at hand.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), "TRK1", "A00001", 2.5, 0.01, decimal.NewFromInt(15))
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	p, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	trackingCode string
	clientRef    string
	dimensions   kernel.Dimensions
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates intake data. Weight, volume and price
// must be non-negative.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	trackingCode string,
	clientRef string,
	weight float64,
	volume float64,
	price decimal.Decimal,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingCode(trackingCode),
		cmd.setClientRef(clientRef),
		cmd.setDimensions(weight, volume),
		cmd.setPrice(price),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingCode returns the trimmed tracking code.
func (c CreateParcelCommand) TrackingCode() string {
	return c.trackingCode
}

// ClientRef returns the client UUID or human code as supplied.
func (c CreateParcelCommand) ClientRef() string {
	return c.clientRef
}

// Dimensions returns the parcel weight (kg) and volume (m³).
func (c CreateParcelCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

// Price returns the declared parcel value.
func (c CreateParcelCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setTrackingCode(trackingCode string) error {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return ErrTrackingCodeIsRequired
	}
	c.trackingCode = trackingCode
	return nil
}

func (c *CreateParcelCommand) setClientRef(clientRef string) error {
	clientRef = strings.TrimSpace(clientRef)
	if clientRef == "" {
		return ErrClientRefIsRequired
	}
	c.clientRef = clientRef
	return nil
}

func (c *CreateParcelCommand) setDimensions(weight, volume float64) error {
	dims, err := kernel.NewDimensions(weight, volume)
	if err != nil {
		return err
	}
	c.dimensions = dims
	return nil
}

func (c *CreateParcelCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", nil)
	}
	c.price = price
	return nil
}
