package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

// DeleteClientCommand removes a client that owns no parcels.
type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteClientCommand creates a command to remove a client.
func NewDeleteClientCommand(clientID kernel.UUID) (DeleteClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return DeleteClientCommand{}, err
	}

	return DeleteClientCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

// ClientID returns the client to remove.
func (c DeleteClientCommand) ClientID() kernel.UUID {
	return c.clientID
}
