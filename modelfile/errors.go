package modelfile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolved is wrapped by errors about references that do not
	// resolve: imports, types, identities and list keys.
	ErrUnresolved = errors.New("unresolved reference")

	// ErrInvalid is wrapped by errors about malformed models.
	ErrInvalid = errors.New("invalid model")
)

// An Error reports where in a model loading failed.
type Error struct {
	Module string
	// Path locates the failing statement within the module,
	// e.g. "/c1/l1" or "typedef percent". It may be empty.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("module %s: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("module %s: %s: %v", e.Module, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
