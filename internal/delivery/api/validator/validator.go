// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"roster/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator validates request DTOs through their `validate` struct tags.
type Validator struct {
	validate *playground.Validate
}

// New returns a validator that reports JSON field names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return &ValidationError{Fields: fieldErrs}
		}

		return errors.WithStack(err)
	}

	return nil
}

// ValidationError lists the failing fields in a client-readable form.
type ValidationError struct {
	Fields playground.ValidationErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.Field()+" failed on '"+field.Tag()+"'")
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Details maps each failing field to the rule it broke.
func (e *ValidationError) Details() map[string]string {
	details := make(map[string]string, len(e.Fields))
	for _, field := range e.Fields {
		details[field.Field()] = field.Tag()
	}

	return details
}
