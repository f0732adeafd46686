package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery or NewListClientParcelsQuery constructor",
)

// ListParcelsQuery retrieves parcels newest first, optionally only those of
// one client.
type ListParcelsQuery struct {
	clientID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListParcelsQuery lists every parcel.
func NewListParcelsQuery() ListParcelsQuery {
	return ListParcelsQuery{guard: guard.NewConstructorGuard()}
}

// NewListClientParcelsQuery lists the parcels of one client.
func NewListClientParcelsQuery(clientID kernel.UUID) (ListParcelsQuery, error) {
	if err := clientID.Validate(); err != nil {
		return ListParcelsQuery{}, err
	}
	return ListParcelsQuery{clientID: &clientID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}
