package foldmap

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for container operations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrKeyNotFound indicates that Fetch was called for an absent key with
	// neither a default value nor a miss handler. It is the only error the
	// container ever produces; every other operation is total over
	// well-formed input and signals absence with a boolean instead.
	ErrKeyNotFound = errors.New("foldmap: key not found")
)

// KeyError is a structured error that wraps a container error with the
// operation that failed and the key involved.
//
// Key holds the key exactly as the caller supplied it, before normalization,
// so callers can report the spelling they actually asked for.
//
// KeyError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type KeyError struct {
	// Op is the operation that failed (e.g., "Map.Fetch").
	Op string

	// Key is the originally requested key, before normalization.
	Key string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("foldmap: %s: %q", e.Op, e.Key)
	}
	return fmt.Sprintf("foldmap: %s: %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// LogValue implements slog.LogValuer, emitting the operation and requested
// key as structured attributes.
func (e *KeyError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("op", e.Op),
		slog.String("key", e.Key),
		slog.String("error", e.Error()),
	)
}

func newKeyNotFound(op, key string) *KeyError {
	return &KeyError{Op: op, Key: key, Err: ErrKeyNotFound}
}
