// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their yaml names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validate checks every field and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// formatFieldError renders one violation using the dotted yaml path.
func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s, got %v", field, e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", field, e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, e.Param(), e.Value())
	case "lt":
		return fmt.Sprintf("%s must be less than %s, got %v", field, e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", field, e.Param(), e.Value())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s, got %q", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
