package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrClientNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrClientPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// RegisterClientCommand represents a request to register a new client.
// The human code is not part of the command: it is issued by the handler.
//
// Example:
//
//	cmd, err := NewRegisterClientCommand(kernel.NewUUID(), "ACME Ltd", "+996555000111", "")
//	if err != nil {
//	    return fmt.Errorf("invalid client data: %w", err)
//	}
//	c, err := handler.Handle(ctx, cmd)
//	fmt.Println(c.HumanCode()) // A00001 for the first client
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	clientID   kernel.UUID
	name       string
	phone      string
	chatHandle string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand validates the contact fields of a new client.
func NewRegisterClientCommand(clientID kernel.UUID, name, phone, chatHandle string) (RegisterClientCommand, error) {
	cmd := RegisterClientCommand{
		chatHandle: strings.TrimSpace(chatHandle),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// ClientID returns the identifier for the new client.
func (c RegisterClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the trimmed client name.
func (c RegisterClientCommand) Name() string {
	return c.name
}

// Phone returns the trimmed contact phone.
func (c RegisterClientCommand) Phone() string {
	return c.phone
}

// ChatHandle returns the optional messaging recipient, empty when absent.
func (c RegisterClientCommand) ChatHandle() string {
	return c.chatHandle
}

func (c *RegisterClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *RegisterClientCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrClientNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *RegisterClientCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrClientPhoneIsRequired
	}
	c.phone = strings.TrimSpace(phone)
	return nil
}
