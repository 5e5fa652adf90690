// Package validation applies declarative field rules to request payloads.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrValidationFailed is matched by every *Error via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// FieldError is one rule violation, addressed by the field's JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the ordered list of field violations of one payload.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(msgs, "; "))
}

// Is lets callers test for ErrValidationFailed.
func (e *Error) Is(target error) bool {
	return target == ErrValidationFailed
}

// NewError builds a single-field validation error.
func NewError(field, message string) *Error {
	return &Error{Errors: []FieldError{{Field: field, Message: message}}}
}

// Validator checks structs tagged with `validate` rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// notblank is shipped with the library but not registered by default.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return &Validator{validate: v}
}

// Struct validates s. It returns nil, a *Error, or an unexpected error when s
// is not a struct.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate payload: %w", err)
	}

	out := &Error{Errors: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, fe.Param(), unit(fe.Kind()))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, fe.Param(), unit(fe.Kind()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (%s)", field, dateHint(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func unit(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}

func dateHint(layout string) string {
	if layout == "2006-01-02" {
		return "YYYY-MM-DD"
	}
	return layout
}
