package kernel

import (
	"fmt"
	"math"

	"cargo/internal/pkg/errs"
)

// DimensionsEpsilon is the smallest weight or volume change that is
// considered an edit worth recomputing shipment totals for.
const DimensionsEpsilon = 0.001

// Dimensions is the physical size of a parcel: weight in kilograms and
// volume in cubic metres. Both are non-negative.
//
// Dimensions is also used for shipment totals, where it is produced by Sum.
type Dimensions struct {
	weight float64
	volume float64
}

// NewDimensions validates and builds a Dimensions value.
//
// Example:
//
//	dims, err := kernel.NewDimensions(12.5, 0.08)
//	if err != nil {
//	    return err // weight or volume negative or not a number
//	}
func NewDimensions(weight, volume float64) (Dimensions, error) {
	if err := validateMeasure("weight", weight); err != nil {
		return Dimensions{}, err
	}
	if err := validateMeasure("volume", volume); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{weight: weight, volume: volume}, nil
}

// Weight returns kilograms.
func (d Dimensions) Weight() float64 {
	return d.weight
}

// Volume returns cubic metres.
func (d Dimensions) Volume() float64 {
	return d.volume
}

// Add returns the component-wise sum of d and other.
func (d Dimensions) Add(other Dimensions) Dimensions {
	return Dimensions{
		weight: d.weight + other.weight,
		volume: d.volume + other.volume,
	}
}

// DiffersFrom reports whether weight or volume moved by more than DimensionsEpsilon.
func (d Dimensions) DiffersFrom(other Dimensions) bool {
	return math.Abs(d.weight-other.weight) > DimensionsEpsilon ||
		math.Abs(d.volume-other.volume) > DimensionsEpsilon
}

// SumDimensions adds up all values; the sum of nothing is zero.
func SumDimensions(values ...Dimensions) Dimensions {
	var total Dimensions
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func validateMeasure(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, math.MaxFloat64)
	}
	return nil
}
