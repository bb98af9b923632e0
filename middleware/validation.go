package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared struct validator used by the request validators
var Validate = validator.New()

func init() {
	// Report field names as they appear on the wire
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationMessages flattens validator errors into a field->message map
func ValidationMessages(err error) map[string]string {
	out := make(map[string]string)

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		out["body"] = "Invalid request body!"
		return out
	}

	for _, fe := range fieldErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required!"
		case "email":
			out[field] = "Invalid email!"
		case "min":
			out[field] = fmt.Sprintf("Must have at least %s characters or items!", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("Must have at most %s characters or items!", fe.Param())
		case "oneof":
			out[field] = fmt.Sprintf("Must be one of: %s!", strings.ReplaceAll(fe.Param(), " ", ", "))
		case "gte":
			out[field] = fmt.Sprintf("Must be at least %s!", fe.Param())
		case "lte":
			out[field] = fmt.Sprintf("Must be at most %s!", fe.Param())
		case "url":
			out[field] = "Must be a valid URL!"
		default:
			out[field] = "Invalid value!"
		}
	}
	return out
}
