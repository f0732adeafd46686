package commands_test

import (
	"context"
	"errors"
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}
func (m *MockClientRepository) GetByHumanCode(_ context.Context, _ client.HumanCode) (*client.Client, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockClientRepository) LastHumanCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(_ context.Context, _ *parcel.Parcel) error    { return nil }
func (m *MockParcelRepository) Update(_ context.Context, _ *parcel.Parcel) error { return nil }
func (m *MockParcelRepository) Delete(_ context.Context, _ kernel.UUID) error    { return nil }
func (m *MockParcelRepository) Get(_ context.Context, _ kernel.UUID) (*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) GetByTrackingCode(_ context.Context, _ string) (*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) GetMany(_ context.Context, _ []kernel.UUID) ([]*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) GetByShipment(_ context.Context, _ kernel.UUID) ([]*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockParcelRepository) CountByClient(ctx context.Context, clientID kernel.UUID) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

type MockClientUoW struct{ mock.Mock }

func (m *MockClientUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockClientUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockClientUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockClientUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}
func (m *MockClientUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

func TestRegisterClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewRegisterClientCommand(id, "ACME", "555", "chat-1")

	repo := new(MockClientRepository)
	uow := new(MockClientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("LastHumanCode", ctx).Return("A00001", nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(c *client.Client) bool {
			return c.HumanCode() == "A00002" && c.ID().IsEqual(id)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterClientCommandHandler(factory)
	c, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, client.HumanCode("A00002"), c.HumanCode())
	assert.Equal(t, "chat-1", c.ChatHandle())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterClientCommandHandler_Handle_FirstClient(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewRegisterClientCommand(kernel.NewUUID(), "ACME", "555", "")

	repo := new(MockClientRepository)
	uow := new(MockClientUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ClientRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("LastHumanCode", ctx).Return("", nil)
	repo.On("Add", ctx, mock.AnythingOfType("*client.Client")).Return(nil)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRegisterClientCommandHandler(factory)
	c, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, client.FirstHumanCode, c.HumanCode())
}

func TestRegisterClientCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.RegisterClientCommand{}
	factory := new(MockClientUoWFactory)
	h := commands.NewRegisterClientCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegisterClientCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterClientCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewRegisterClientCommand(kernel.NewUUID(), "ACME", "555", "")

	uow := new(MockClientUoW)
	factory := new(MockClientUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterClientCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestRegisterClientCommandHandler_Handle_AddConflict(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewRegisterClientCommand(kernel.NewUUID(), "ACME", "555", "")

	repo := new(MockClientRepository)
	uow := new(MockClientUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("LastHumanCode", ctx).Return("A00009", nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*client.Client")).
			Return(errs.NewConflictError("humanCode", "A00010")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterClientCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	repo.AssertExpectations(t)
}

func TestNewRegisterClientCommand(t *testing.T) {
	t.Run("should trim and keep fields", func(t *testing.T) {
		cmd, err := commands.NewRegisterClientCommand(kernel.NewUUID(), " ACME ", " 555 ", " chat ")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ACME", cmd.Name())
		assert.Equal(t, "555", cmd.Phone())
		assert.Equal(t, "chat", cmd.ChatHandle())
	})

	t.Run("should join missing fields", func(t *testing.T) {
		_, err := commands.NewRegisterClientCommand(kernel.UUID{}, "", "", "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, commands.ErrClientNameIsRequired)
		require.ErrorIs(t, err, commands.ErrClientPhoneIsRequired)
		assert.True(t, errs.IsInvalidInput(err))
	})
}
