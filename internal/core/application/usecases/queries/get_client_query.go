package queries

import (
	"errors"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetClientQueryIsNotConstructed = errors.New(
	"GetClientQuery must be created via NewGetClientQuery or NewGetClientByHumanCodeQuery constructor",
)

// GetClientQuery looks a client up either by ID or by human code.
//
// Example:
//
//	query, err := NewGetClientByHumanCodeQuery("A00042")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetClientQuery struct {
	clientID  *kernel.UUID
	humanCode client.HumanCode

	guard guard.ConstructorGuard
}

// NewGetClientQuery looks a client up by ID.
func NewGetClientQuery(clientID kernel.UUID) (GetClientQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{clientID: &clientID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetClientByHumanCodeQuery rejects codes that are not of the A##### form.
func NewGetClientByHumanCodeQuery(code string) (GetClientQuery, error) {
	humanCode, err := client.ParseHumanCode(code)
	if err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{humanCode: humanCode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}
