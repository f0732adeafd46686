package queries

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery retrieves every shipment, newest first, with members.
type ListShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates the query.
func NewListShipmentsQuery() ListShipmentsQuery {
	return ListShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}
