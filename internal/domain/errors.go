package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Document errors
	ErrMsgMalformedDocument = "malformed document"
	ErrMsgMissingField      = "missing required field"
	ErrMsgInvalidRange      = "value out of range"
	ErrMsgUnknownReference  = "unknown reference"
	ErrMsgEmptyEffectList   = "beverage defines no effects"

	// Lookup errors
	ErrMsgDefinitionNotFound = "definition not found"
)

// Content errors
// Every per-file failure wraps exactly one of the document errors below.
// Wrap them with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Document errors
	ErrMalformedDocument = errors.New(ErrMsgMalformedDocument)
	ErrMissingField      = errors.New(ErrMsgMissingField)
	ErrInvalidRange      = errors.New(ErrMsgInvalidRange)
	ErrUnknownReference  = errors.New(ErrMsgUnknownReference)
	ErrEmptyEffectList   = errors.New(ErrMsgEmptyEffectList)

	// Lookup errors
	ErrDefinitionNotFound = errors.New(ErrMsgDefinitionNotFound)
)

// ErrorKind names the document error wrapped by err, or "" when none matches.
// Used as a metrics label and in load summaries.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedDocument):
		return ErrorKindMalformedDocument
	case errors.Is(err, ErrMissingField):
		return ErrorKindMissingField
	case errors.Is(err, ErrInvalidRange):
		return ErrorKindInvalidRange
	case errors.Is(err, ErrUnknownReference):
		return ErrorKindUnknownReference
	case errors.Is(err, ErrEmptyEffectList):
		return ErrorKindEmptyEffectList
	default:
		return ""
	}
}
