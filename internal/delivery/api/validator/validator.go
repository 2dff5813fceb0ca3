// Package validator adapts go-playground/validator to echo and maps field
// failures onto the domain validation error.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that names fields by their JSON key.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate reports the first failing field as ErrValidationFailed.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate request")
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage(Message(fieldErrs[0])))
}

// Message renders a single field failure for API clients.
func Message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please fill a valid email address"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s cannot have more than %s items", field, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid id", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
