package domain

import "fmt"

// DocumentError reports why one content document was rejected.
// Err always wraps one of the document sentinels (ErrMalformedDocument, ...).
type DocumentError struct {
	Path  string
	Kind  Kind
	Field string // JSON path of the offending field, "" when the whole document is at fault
	Err   error
}

func (e *DocumentError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Field, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// ErrorKind returns the label of the wrapped sentinel
func (e *DocumentError) ErrorKind() string {
	return ErrorKind(e.Err)
}
