package queries

import (
	"errors"
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery looks a parcel up by tracking code, the identifier printed
// on the label.
type GetParcelQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

// NewGetParcelQuery looks a parcel up by its tracking code.
func NewGetParcelQuery(trackingCode string) (GetParcelQuery, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return GetParcelQuery{}, errs.NewValueIsRequiredError("trackingCode")
	}
	return GetParcelQuery{trackingCode: trackingCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}
