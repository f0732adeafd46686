package client_test

import (
	"strings"
	"testing"
	"time"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create client with all fields", func(t *testing.T) {
		c, err := client.NewClient(id, client.FirstHumanCode, "ACME Ltd", "+996555000111", "424242")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, client.FirstHumanCode, c.HumanCode())
		assert.Equal(t, "ACME Ltd", c.Name())
		assert.Equal(t, "+996555000111", c.Phone())
		assert.Equal(t, "424242", c.ChatHandle())
		assert.True(t, c.HasChatHandle())
		assert.WithinDuration(t, time.Now(), c.CreatedAt(), time.Minute)
	})

	t.Run("should allow missing chat handle", func(t *testing.T) {
		c, err := client.NewClient(id, client.FirstHumanCode, "ACME Ltd", "555", "  ")

		require.NoError(t, err)
		assert.False(t, c.HasChatHandle())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		c, err := client.NewClient(kernel.UUID{}, "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, client.ErrNameIsRequired)
		require.ErrorIs(t, err, client.ErrPhoneIsRequired)
		assert.Contains(t, err.Error(), "humanCode")
	})

	t.Run("should reject overlong name", func(t *testing.T) {
		_, err := client.NewClient(id, client.FirstHumanCode, strings.Repeat("n", 101), "555", "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject overlong phone", func(t *testing.T) {
		_, err := client.NewClient(id, client.FirstHumanCode, "ACME", strings.Repeat("5", 21), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreClient(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	c, err := client.RestoreClient(kernel.NewUUID(), "A00017", "ACME", "555", "", createdAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, c.CreatedAt())
	assert.Equal(t, client.HumanCode("A00017"), c.HumanCode())
}

func TestClient_Validate(t *testing.T) {
	var nilClient *client.Client
	require.ErrorIs(t, nilClient.Validate(), client.ErrClientIsNotConstructed)

	var zero client.Client
	require.ErrorIs(t, zero.Validate(), client.ErrClientIsNotConstructed)
}

func TestClient_Update(t *testing.T) {
	t.Run("should replace contact fields and keep human code", func(t *testing.T) {
		c, _ := client.NewClient(kernel.NewUUID(), "A00003", "Old", "111", "")

		err := c.Update("New", "222", "chat-1")

		require.NoError(t, err)
		assert.Equal(t, "New", c.Name())
		assert.Equal(t, "222", c.Phone())
		assert.Equal(t, "chat-1", c.ChatHandle())
		assert.Equal(t, client.HumanCode("A00003"), c.HumanCode())
	})

	t.Run("should leave client untouched on invalid input", func(t *testing.T) {
		c, _ := client.NewClient(kernel.NewUUID(), "A00003", "Old", "111", "chat")

		err := c.Update("Renamed", "", "")

		require.ErrorIs(t, err, client.ErrPhoneIsRequired)
		assert.Equal(t, "Old", c.Name())
		assert.Equal(t, "111", c.Phone())
		assert.Equal(t, "chat", c.ChatHandle())
	})
}

func TestClient_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := client.NewClient(id, "A00001", "A", "1", "")
	b, _ := client.NewClient(id, "A00002", "B", "2", "")
	other, _ := client.NewClient(kernel.NewUUID(), "A00001", "A", "1", "")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(other))
	assert.False(t, a.IsEqual(nil))
}
