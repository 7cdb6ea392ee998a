package source

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is matched by errors for required keys absent from the document.
	ErrMissingKey = errors.New("missing required key")
	// ErrMalformed is matched by errors for invalid JSON or values of the wrong shape.
	ErrMalformed = errors.New("malformed scene")
)

// KeyError reports a required key absent from an object.
type KeyError struct {
	// Path of the object that lacks the key; empty for the document root.
	Path string
	// Key is the missing key.
	Key string
}

func (e *KeyError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s %q", ErrMissingKey, e.Key)
	}

	return fmt.Sprintf("%s %q in %s", ErrMissingKey, e.Key, e.Path)
}

func (e *KeyError) Unwrap() error {
	return ErrMissingKey
}

func malformed(path string, err error) error {
	if path == "" {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
}
