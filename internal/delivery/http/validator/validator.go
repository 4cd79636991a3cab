// Package validator provides request validation for the HTTP delivery.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps go-playground/validator for echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator instance.
func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates the bound request struct.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
