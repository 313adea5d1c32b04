// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can validate bound request bodies in place.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "bakehouse/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the generic
// invalid-input error with the validator's description as details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return nil
}
