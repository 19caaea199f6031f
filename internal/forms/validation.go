// Package forms parses submitted HTML forms and API payloads and validates them,
// reporting problems as a list of field errors rather than a single error.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes a single invalid field of a submitted form
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// FieldErrors is the result of validating a form; it is empty when the form is valid
type FieldErrors []FieldError

// For returns the message attached to the named field, or an empty string
func (errs FieldErrors) For(field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their form name so errors line up with the inputs
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("positive_decimal", positiveDecimal); err != nil {
		panic(err)
	}
	return v
}

// maxAmount bounds prices to the 8 integer digits of a decimal(10,2) column
var maxAmount = decimal.New(1, 8)

// positiveDecimal accepts amounts greater than zero that fit a decimal(10,2) column
func positiveDecimal(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	if !value.IsPositive() || !value.Equal(value.Truncate(2)) {
		return false
	}
	return value.LessThan(maxAmount)
}

// check runs the struct validator and converts its output to FieldErrors
func check(form interface{}) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{{Field: "form", Message: err.Error()}}
	}
	result := make(FieldErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		result = append(result, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	case "positive_decimal":
		return "must be a number greater than zero with at most 2 decimals and 8 digits"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("is invalid (%s)", fe.Tag())
	}
}

// BindingError wraps a failure to decode the request into a form
func BindingError(err error) FieldErrors {
	return FieldErrors{{Field: "form", Message: err.Error()}}
}
