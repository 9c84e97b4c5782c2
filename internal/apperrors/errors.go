// Package apperrors defines the error kinds the services surface to HTTP
// callers. Anything that is not one of these kinds is treated as internal and
// never reaches the client in detail.
package apperrors

import "fmt"

// Kind classifies an error for the response formatter.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
)

// Error is a tagged error carrying everything the formatter needs: the kind,
// the title rendered in the "error" field, and either a detail message or a
// field violation map.
type Error struct {
	Kind    Kind
	Title   string
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Kind == KindValidation {
		return fmt.Sprintf("%s: %v", e.Title, e.Fields)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

// NewValidation reports one or more field-level violations.
func NewValidation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Title: "Validation Failed", Fields: fields}
}

// NewConflict reports that an entity with a unique field already exists.
func NewConflict(title, format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Title: title, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound reports that the identified entity does not exist.
func NewNotFound(title, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Title: title, Message: fmt.Sprintf(format, args...)}
}
