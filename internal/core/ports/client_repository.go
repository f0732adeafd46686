// Package ports defines the contracts between the cargo core and its
// infrastructure: repositories, the unit of work and outbound channels
// such as notifications, events, password hashing and tokens.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client. A duplicate human code is reported as a Conflict.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Delete removes a client. Returns ObjectNotFoundError if it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a client by ID. Returns ObjectNotFoundError if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetByHumanCode retrieves a client by its A##### code.
	// Returns ObjectNotFoundError if no client carries the code.
	GetByHumanCode(ctx context.Context, code client.HumanCode) (*client.Client, error)

	// LastHumanCode returns the greatest human code in use, or an empty string
	// when there are no clients. Longer codes rank above shorter ones so that
	// A100000 follows A99999.
	LastHumanCode(ctx context.Context) (string, error)
}
