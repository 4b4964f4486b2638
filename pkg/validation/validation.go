// Package validation evaluates field rules on request payloads and
// collects per-field error bags in the shape the API returns to clients.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to the messages produced for it.
type Errors map[string][]string

// Add appends a message to the field's bag.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Any reports whether at least one field failed.
func (e Errors) Any() bool { return len(e) > 0 }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their json names, matching the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check runs the struct's validate tags and returns the error bag.
// An empty bag means the input passed.
func Check(input any) Errors {
	errs := Errors{}
	err := validate.Struct(input)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("input", "The input could not be validated.")
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
