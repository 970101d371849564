package service

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of [LoadError].
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDuplicateKey     = errors.New("duplicate key")
)

// LoadError reports why a bootstrap run wrote nothing.
type LoadError struct {
	// Kind is one of ErrValidationFailed, ErrStoreUnavailable or
	// ErrDuplicateKey.
	Kind error
	// Collection and ID name the colliding document of a duplicate key.
	Collection string
	ID         string
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrDuplicateKey) && e.ID != "":
		return fmt.Sprintf("%s: %s %q", e.Kind, e.Collection, e.ID)
	case e.Err != nil && strings.HasPrefix(e.Err.Error(), e.Kind.Error()):
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
