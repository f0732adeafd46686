package http

import (
	"errors"

	"cargo/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var _ echo.Validator = (*RequestValidator)(nil)

// RequestValidator checks request bodies against their validate struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate reports the first failing field as an invalid-value error.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(fieldErrs[0].Field(), err)
	}
	return errs.NewValueIsInvalidErrorWithCause("body", err)
}
