package identifier

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultNamespace is used when an identifier is written without a namespace
const DefaultNamespace = "minecraft"

// Separator splits namespace and path
const Separator = ":"

// ErrInvalidIdentifier is returned for identifiers that cannot be parsed
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ID is a namespaced name of the form namespace:path
type ID struct {
	Namespace string
	Path      string
}

// New builds an ID from its parts without validation
func New(namespace, path string) ID {
	return ID{Namespace: namespace, Path: path}
}

// Parse parses namespace:path. A bare path gets DefaultNamespace.
func Parse(s string) (ID, error) {
	if s == "" {
		return ID{}, fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}

	namespace, path, found := strings.Cut(s, Separator)
	if !found {
		namespace, path = DefaultNamespace, s
	}

	if namespace == "" {
		return ID{}, fmt.Errorf("%w: '%s' has empty namespace", ErrInvalidIdentifier, s)
	}
	if path == "" {
		return ID{}, fmt.Errorf("%w: '%s' has empty path", ErrInvalidIdentifier, s)
	}
	if !validNamespace(namespace) {
		return ID{}, fmt.Errorf("%w: '%s' has illegal characters in namespace", ErrInvalidIdentifier, s)
	}
	if !validPath(path) {
		return ID{}, fmt.Errorf("%w: '%s' has illegal characters in path", ErrInvalidIdentifier, s)
	}

	return ID{Namespace: namespace, Path: path}, nil
}

// MustParse is Parse for literals; it panics on error
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns namespace:path, or "" for the zero ID
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.Namespace + Separator + id.Path
}

// IsZero reports whether the ID is unset
func (id ID) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}

// WithSuffix derives a sibling identifier in the same namespace, e.g. demo:can -> demo:can_block
func (id ID) WithSuffix(suffix string) ID {
	return ID{Namespace: id.Namespace, Path: id.Path + suffix}
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validNamespace(s string) bool {
	for _, r := range s {
		if !isBaseRune(r) {
			return false
		}
	}
	return true
}

func validPath(s string) bool {
	for _, r := range s {
		if !isBaseRune(r) && r != '/' {
			return false
		}
	}
	return true
}

func isBaseRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.' || r == '-'
}
