package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const trackingCodeMaxLength = 50

// PriceScale is the number of decimal places a price may carry. Storage keeps
// exactly this many.
const PriceScale = 2

var (
	// ErrParcelIsNotConstructed is returned when using a Parcel that was not
	// obtained from NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrTrackingCodeIsRequired is returned for an empty tracking code.
	ErrTrackingCodeIsRequired = errs.NewValueIsRequiredError("trackingCode")
	// ErrClientIsRequired is returned when a parcel has no owning client.
	ErrClientIsRequired = errs.NewValueIsRequiredError("clientId")
)

// Parcel is a package stored in the warehouse. It is an aggregate root; the
// owning client and shipment are referenced by ID only.
//
// Business rules:
//   - Tracking code is required, at most 50 characters, and may be edited
//   - Weight and volume are non-negative (see kernel.Dimensions)
//   - Price is an exact non-negative decimal amount
//   - Owning client is required and never changes
//   - Shipment reference is optional; Unassign clears it
//
// Example usage:
//
//	dims, _ := kernel.NewDimensions(2.5, 0.01)
//	p, err := parcel.NewParcel(kernel.NewUUID(), "TRK1", clientID, dims, decimal.NewFromInt(15))
//	if err != nil {
//	    return err
//	}
//	_ = p.AssignTo(shipmentID)
type Parcel struct {
	// id uniquely identifies the parcel
	id kernel.UUID
	// trackingCode is the caller-supplied unique label
	trackingCode string
	// dimensions holds weight and volume
	dimensions kernel.Dimensions
	// price is the declared shipping price
	price decimal.Decimal
	// status is the current lifecycle state
	status Status
	// clientID references the owning client
	clientID kernel.UUID
	// shipmentID references the containing shipment, nil when unassigned
	shipmentID *kernel.UUID
	// createdAt is the warehouse intake time
	createdAt time.Time
	// deliveredAt is set when the parcel reaches Delivered
	deliveredAt *time.Time
	// guard ensures the parcel was properly constructed
	guard guard.ConstructorGuard
}

// NewParcel receives a parcel into the warehouse. The parcel starts
// InWarehouse and unassigned.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - trackingCode: required label, at most 50 characters
//   - clientID: owning client (must be valid UUID)
//   - dimensions: weight and volume
//   - price: non-negative amount
//
// Returns:
//   - *Parcel: the new parcel with createdAt set to now (UTC)
//   - error: joined validation errors for every invalid parameter
func NewParcel(
	id kernel.UUID,
	trackingCode string,
	clientID kernel.UUID,
	dimensions kernel.Dimensions,
	price decimal.Decimal,
) (*Parcel, error) {
	return RestoreParcel(id, trackingCode, clientID, nil, dimensions, price, InWarehouse, time.Now().UTC(), nil)
}

// RestoreParcel reconstructs a Parcel from persistent storage with its
// status, shipment reference and timestamps as they were saved.
//
// Example:
//
//	p, err := parcel.RestoreParcel(id, dto.TrackingCode, clientID, shipmentID,
//	    dims, dto.Price, parcel.Status(dto.Status), dto.CreatedAt, dto.DeliveredAt)
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	clientID kernel.UUID,
	shipmentID *kernel.UUID,
	dimensions kernel.Dimensions,
	price decimal.Decimal,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Parcel, error) {
	p := &Parcel{
		dimensions:  dimensions,
		createdAt:   createdAt,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setClientID(clientID),
		p.setShipmentID(shipmentID),
		p.setPrice(price),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the Parcel was built by a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares parcels by ID.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingCode returns the current tracking code.
func (p *Parcel) TrackingCode() string {
	return p.trackingCode
}

// Dimensions returns weight and volume.
func (p *Parcel) Dimensions() kernel.Dimensions {
	return p.dimensions
}

// Price returns the declared price.
func (p *Parcel) Price() decimal.Decimal {
	return p.price
}

// Status returns the lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// ClientID returns the owning client's ID.
func (p *Parcel) ClientID() kernel.UUID {
	return p.clientID
}

// ShipmentID returns the containing shipment's ID, or nil when unassigned.
func (p *Parcel) ShipmentID() *kernel.UUID {
	return p.shipmentID
}

// CreatedAt returns the intake time.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// DeliveredAt returns the delivery time, or nil.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// IsAssigned reports whether the parcel belongs to any shipment.
func (p *Parcel) IsAssigned() bool {
	return p.shipmentID != nil
}

// BelongsTo reports whether the parcel is a member of the given shipment.
func (p *Parcel) BelongsTo(shipmentID kernel.UUID) bool {
	return p.shipmentID != nil && p.shipmentID.IsEqual(shipmentID)
}

// Edit replaces tracking code, dimensions and price.
//
// Returns:
//   - dimensionsChanged: true when weight or volume moved by more than
//     kernel.DimensionsEpsilon, meaning the containing shipment's totals are stale
//   - error: validation error; the parcel is left untouched in that case
//
// Example:
//
//	changed, err := p.Edit("TRK1", newDims, p.Price())
//	if err == nil && changed && p.IsAssigned() {
//	    // recompute the shipment totals
//	}
func (p *Parcel) Edit(trackingCode string, dimensions kernel.Dimensions, price decimal.Decimal) (bool, error) {
	updated := *p
	if err := errors.Join(
		updated.setTrackingCode(trackingCode),
		updated.setPrice(price),
	); err != nil {
		return false, err
	}

	dimensionsChanged := p.dimensions.DiffersFrom(dimensions)
	updated.dimensions = dimensions
	*p = updated
	return dimensionsChanged, nil
}

// AssignTo places the parcel into a shipment, replacing any previous
// assignment. Callers that must not take a parcel from another shipment
// check BelongsTo/IsAssigned first.
func (p *Parcel) AssignTo(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	p.shipmentID = shipmentID.Ptr()
	return nil
}

// Unassign removes the parcel from its shipment.
func (p *Parcel) Unassign() {
	p.shipmentID = nil
}

// ApplyStatus sets the lifecycle state as propagated from the shipment.
// Reaching Delivered stamps the delivery time once.
func (p *Parcel) ApplyStatus(status Status, at time.Time) error {
	if err := p.setStatus(status); err != nil {
		return err
	}
	if status == Delivered && p.deliveredAt == nil {
		at = at.UTC()
		p.deliveredAt = &at
	}
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrTrackingCodeIsRequired
	}
	if n := len([]rune(code)); n > trackingCodeMaxLength {
		return errs.NewValueIsOutOfRangeError("trackingCode length", n, 1, trackingCodeMaxLength)
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return ErrClientIsRequired
	}
	p.clientID = clientID
	return nil
}

func (p *Parcel) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID == nil {
		p.shipmentID = nil
		return nil
	}
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	p.shipmentID = shipmentID.Ptr()
	return nil
}

func (p *Parcel) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeErrorWithCause("price", price.String(), "0", nil,
			fmt.Errorf("%s is negative", price))
	}
	if !price.Equal(price.Round(PriceScale)) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s has more than %d decimal places", price, PriceScale))
	}
	p.price = price
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
