package server

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct returns nil or a "field: message" summary of every failure.
func validateStruct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), simpleErrorMessage(fe)))
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "; "))
}

func simpleErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
