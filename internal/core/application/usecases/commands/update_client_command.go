package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand replaces the contact fields of an existing client.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID   kernel.UUID
	name       string
	phone      string
	chatHandle string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand validates the new contact details. An empty
// chatHandle removes the handle.
func NewUpdateClientCommand(clientID kernel.UUID, name, phone, chatHandle string) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		chatHandle: strings.TrimSpace(chatHandle),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the client to edit.
func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the new name.
func (c UpdateClientCommand) Name() string {
	return c.name
}

// Phone returns the new phone.
func (c UpdateClientCommand) Phone() string {
	return c.phone
}

// ChatHandle returns the new chat handle, or an empty string.
func (c UpdateClientCommand) ChatHandle() string {
	return c.chatHandle
}

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *UpdateClientCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrClientNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *UpdateClientCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrClientPhoneIsRequired
	}
	c.phone = strings.TrimSpace(phone)
	return nil
}
