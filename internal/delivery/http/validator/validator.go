// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground validator for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
