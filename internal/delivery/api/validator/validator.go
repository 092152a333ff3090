// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domainerrors "tube/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator validates bound request structs.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// maxbytes bounds the encoded length; max counts runes.
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &Validator{validate: v}
}

// Validate returns domainerrors.ErrValidationFailed describing every
// failing field, so handlers can render it like any other domain error.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	return domainerrors.ErrValidationFailed.WithDetails(Describe(Fields(validationErrs)))
}

// Fields flattens validator errors into FieldError values keyed by JSON name.
func Fields(errs validator.ValidationErrors) []FieldError {
	return lo.Map(errs, func(fe validator.FieldError, _ int) FieldError {
		return FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	})
}

// Describe renders fields as "email: email; password: required".
func Describe(fields []FieldError) string {
	parts := lo.Map(fields, func(f FieldError, _ int) string {
		if f.Param == "" {
			return fmt.Sprintf("%s: %s", f.Field, f.Rule)
		}

		return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
	})

	return strings.Join(parts, "; ")
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}
