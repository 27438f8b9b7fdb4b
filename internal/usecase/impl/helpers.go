// Package impl contains the implementation of the application's business logic.
package impl

import (
	"reflect"
	"strings"

	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/tenant"
	"curator/internal/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateInput runs the struct's validate tags and reports the first failure as a validation error.
func validateInput(input any) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	if err := validate.Struct(input); err != nil {
		if fieldErrs, ok := errors.AsType[validator.ValidationErrors](err); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]

			return domainerrors.ErrValidationFailed.WithDetails(fe.Field() + " failed on " + fe.Tag())
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}

func validationError(details string) error {
	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// guardError maps tenant guard failures to API errors. Missing records use notFound.
func guardError(err error, notFound *domainerrors.BaseError) error {
	switch {
	case errors.Is(err, tenant.ErrNotFound):
		return notFound
	case errors.Is(err, tenant.ErrForbidden):
		return domainerrors.ErrForbidden
	default:
		return err
	}
}

// trimmedOrNil trims s and returns nil when nothing is left.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

// optionalURL trims s and checks it is a URL. Blank input yields nil.
func optionalURL(s *string, field string) (*string, error) {
	v := trimmedOrNil(s)
	if v == nil {
		return nil, nil
	}
	if err := validate.Var(*v, "url"); err != nil {
		return nil, validationError(field + " must be a valid URL")
	}

	return v, nil
}
