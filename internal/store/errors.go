package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Not-found sentinels, one per entity collection. Returned both when the
// record being updated/deleted is absent and when a referenced parent id
// does not resolve.
var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrSubCategoryNotFound  = errors.New("sub category not found")
	ErrBrandNotFound        = errors.New("brand not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrVariantTypeNotFound  = errors.New("variant type not found")
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrPosterNotFound       = errors.New("poster not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var notFoundErrors = []error{
	ErrCategoryNotFound,
	ErrSubCategoryNotFound,
	ErrBrandNotFound,
	ErrProductNotFound,
	ErrVariantTypeNotFound,
	ErrCouponNotFound,
	ErrPosterNotFound,
	ErrNotificationNotFound,
}

// IsNotFound reports whether err is any of the store's not-found sentinels.
func IsNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports one or more missing/malformed input fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IsValidation reports whether err is a store ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// validationError converts validator tag failures into the store's error
// type. Non-tag errors (bad input shape) pass through unchanged.
func validationError(err error) error {
	var tagErrs validator.ValidationErrors
	if !errors.As(err, &tagErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, e := range tagErrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   e.Field(),
			Message: tagMessage(e),
		})
	}
	return ve
}

func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "gte":
		return "value must be greater than or equal to " + e.Param()
	case "lte":
		return "value must be less than or equal to " + e.Param()
	case "oneof":
		return "value must be one of: " + e.Param()
	default:
		return "invalid value"
	}
}
