package client

import (
	"errors"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

const (
	nameMaxLength  = 100
	phoneMaxLength = 20
)

var (
	// ErrClientIsNotConstructed is returned when using a Client that was not
	// obtained from NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrNameIsRequired is returned for an empty client name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned for an empty phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Client is a customer of the warehouse. It is an aggregate root referenced
// by parcels through its ID.
//
// Business rules:
//   - ID and human code are fixed at registration
//   - Name (up to 100 characters) and phone (up to 20) are required
//   - Chat handle is optional; an empty handle means the client is never notified
//
// Example usage:
//
//	c, err := client.NewClient(kernel.NewUUID(), client.FirstHumanCode, "ACME Ltd", "+996555000111", "")
//	if err != nil {
//	    return err
//	}
//	_ = c.Update("ACME Logistics", "+996555000111", "42424242")
type Client struct {
	// id uniquely identifies the client
	id kernel.UUID
	// humanCode is the sequential label code, immutable once assigned
	humanCode HumanCode
	// name is the client's display name
	name string
	// phone is the contact number
	phone string
	// chatHandle is the messaging recipient for notifications, empty if none
	chatHandle string
	// createdAt is the registration time
	createdAt time.Time
	// guard ensures the client was properly constructed
	guard guard.ConstructorGuard
}

// NewClient registers a new client under the given human code.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - humanCode: the next free code, see NextHumanCode
//   - name, phone: required contact fields
//   - chatHandle: optional messaging recipient
//
// Returns:
//   - *Client: the registered client with createdAt set to now (UTC)
//   - error: joined validation errors for every invalid parameter
func NewClient(id kernel.UUID, humanCode HumanCode, name, phone, chatHandle string) (*Client, error) {
	return RestoreClient(id, humanCode, name, phone, chatHandle, time.Now().UTC())
}

// RestoreClient reconstructs a Client from persistent storage, keeping its
// original registration time.
func RestoreClient(
	id kernel.UUID,
	humanCode HumanCode,
	name string,
	phone string,
	chatHandle string,
	createdAt time.Time,
) (*Client, error) {
	c := &Client{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setHumanCode(humanCode),
		c.setName(name),
		c.setPhone(phone),
		c.setChatHandle(chatHandle),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Client was built by a constructor.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares clients by ID.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// HumanCode returns the sequential label code.
func (c *Client) HumanCode() HumanCode {
	return c.humanCode
}

// Name returns the display name.
func (c *Client) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c *Client) Phone() string {
	return c.phone
}

// ChatHandle returns the notification recipient, or an empty string.
func (c *Client) ChatHandle() string {
	return c.chatHandle
}

// HasChatHandle reports whether status notifications can be delivered.
func (c *Client) HasChatHandle() bool {
	return c.chatHandle != ""
}

// CreatedAt returns the registration time.
func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// Update replaces the mutable contact fields. The human code is left untouched.
// Nothing is changed when any of the new values is invalid.
func (c *Client) Update(name, phone, chatHandle string) error {
	updated := *c
	if err := errors.Join(
		updated.setName(name),
		updated.setPhone(phone),
		updated.setChatHandle(chatHandle),
	); err != nil {
		return err
	}
	*c = updated
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setHumanCode(code HumanCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	c.humanCode = code
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := len([]rune(name)); n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, nameMaxLength)
	}
	c.name = name
	return nil
}

func (c *Client) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	if n := len([]rune(phone)); n > phoneMaxLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, 1, phoneMaxLength)
	}
	c.phone = phone
	return nil
}

func (c *Client) setChatHandle(chatHandle string) error {
	c.chatHandle = strings.TrimSpace(chatHandle)
	return nil
}
