package http

import (
	"cargo/internal/api"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// bindBody decodes the JSON body into dst and runs the echo validator on it.
func bindBody(ctx echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ctx, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return ctx.Validate(dst)
}

func toKernelID(id api.ID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelIDs(ids *[]api.ID) ([]kernel.UUID, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]kernel.UUID, 0, len(*ids))
	for _, id := range *ids {
		kid, err := toKernelID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, kid)
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
