package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/client"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/parcel"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// ErrClientNotResolvable is the cause of the invalid-input error returned when
// the client reference matches no client.
var ErrClientNotResolvable = errors.New("client reference does not match any client")

// CreateParcelCommandHandler receives parcels into the warehouse.
//
// Business rules:
//   - The client reference must resolve to an existing client (InvalidInput otherwise)
//   - The tracking code must be unused (Conflict otherwise)
//   - The parcel starts InWarehouse and unassigned
type CreateParcelCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel intake.
// Requires a CargoUoWFactory to resolve the owning client.
func NewCreateParcelCommandHandler(uowFactory CargoUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the client, then stores the parcel InWarehouse and unassigned.
// Returns ConflictError for a tracking code already in use.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := resolveClient(ctx, uow.ClientRepository(), cmd.ClientRef())
	if err != nil {
		return nil, err
	}

	parcelRepo := uow.ParcelRepository()
	if err = ensureTrackingCodeFree(ctx, parcelRepo, cmd.TrackingCode(), nil); err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), cmd.TrackingCode(), owner.ID(), cmd.Dimensions(), cmd.Price())
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// resolveClient looks a client up by UUID or, failing that, by human code.
// A reference that matches nothing is invalid input rather than NotFound:
// it is a field of the request, not the addressed resource.
func resolveClient(ctx context.Context, repo ports.ClientRepository, ref string) (*client.Client, error) {
	var (
		c   *client.Client
		err error
	)

	if id, parseErr := kernel.UUIDFromString(ref); parseErr == nil {
		c, err = repo.Get(ctx, id)
	} else {
		code, codeErr := client.ParseHumanCode(ref)
		if codeErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("client", errors.Join(ErrClientNotResolvable, codeErr))
		}
		c, err = repo.GetByHumanCode(ctx, code)
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause("client", ErrClientNotResolvable)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ensureTrackingCodeFree returns a Conflict when code is used by a parcel
// other than self.
func ensureTrackingCodeFree(ctx context.Context, repo ports.ParcelRepository, code string, self *kernel.UUID) error {
	existing, err := repo.GetByTrackingCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if self != nil && existing.ID().IsEqual(*self) {
		return nil
	}
	return errs.NewConflictError("trackingCode", code)
}
