// Package validation evaluates the declarative field rules on request DTOs
// and turns violations into the field name to message mapping the error
// response contract requires.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messages maps json field name and failed tag to the human-readable message.
// Unlisted combinations fall back to a generic message, which should only
// happen if a new tag is added without a message.
var messages = map[string]map[string]string{
	"userName": {
		"required": "User name is required",
		"notblank": "User name is required",
		"min":      "User name must be between 3 and 50 characters",
		"max":      "User name must be between 3 and 50 characters",
	},
	"userEmail": {
		"required": "Email is required",
		"notblank": "Email is required",
		"email":    "Email must be valid",
		"endswith": "Email must contain @ and end with .com",
	},
	"password": {
		"required":     "Password is required",
		"notblank":     "Password is required",
		"min":          "Password must be at least 8 characters",
		"alphanumpass": "Password must be alphanumeric (letters and numbers)",
	},
	"blogName": {
		"required": "Blog name is required",
		"notblank": "Blog name is required",
		"min":      "Blog name must be at least 20 characters",
		"max":      "Blog name must be at least 20 characters",
	},
	"category": {
		"required": "Category is required",
		"notblank": "Category is required",
		"min":      "Category must be at least 20 characters",
		"max":      "Category must be at least 20 characters",
	},
	"article": {
		"required": "Article is required",
		"notblank": "Article is required",
		"min":      "Article must be at least 1000 characters",
	},
	"authorName": {
		"required": "Author name is required",
		"notblank": "Author name is required",
		"min":      "Author name must be between 3 and 50 characters",
		"max":      "Author name must be between 3 and 50 characters",
	},
}

// New creates a validator configured for the request DTOs: field names come
// from json tags and the custom rules are registered.
func New() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Go's regexp has no lookahead, so the "letters and digits, at least one
	// of each" password rule is a custom function instead of a pattern.
	_ = validate.RegisterValidation("alphanumpass", alphanumPass)
	_ = validate.RegisterValidation("notblank", notBlank)

	return validate
}

// Struct validates s and returns the full violation map, or nil when every
// rule passes. One message per field is kept, matching the response contract.
func Struct(validate *validator.Validate, s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		violations[fieldErr.Field()] = messageFor(fieldErr.Field(), fieldErr.Tag())
	}
	return violations
}

func messageFor(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return "Field '" + field + "' failed on the '" + tag + "' rule"
}

func alphanumPass(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	hasLetter, hasDigit := false, false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
