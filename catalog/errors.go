package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced movie does not exist.
var ErrNotFound = errors.New("catalog: movie not found")

// ValidationKind classifies a rejected request parameter.
type ValidationKind int

const (
	// MissingParameter means a required parameter was absent or empty.
	MissingParameter ValidationKind = iota + 1

	// InvalidFormat means a parameter was present but could not be parsed.
	InvalidFormat
)

func (k ValidationKind) String() string {
	switch k {
	case MissingParameter:
		return "missing parameter"
	case InvalidFormat:
		return "invalid format"
	default:
		return "invalid parameter"
	}
}

// ValidationError reports a malformed or missing request parameter.
// It is always client-facing and never retried.
type ValidationError struct {
	Kind  ValidationKind
	Param string
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingParameter:
		return fmt.Sprintf("catalog: missing %s parameter", e.Param)
	case InvalidFormat:
		return fmt.Sprintf("catalog: %s must be an integer, got %q", e.Param, e.Value)
	default:
		return fmt.Sprintf("catalog: invalid %s parameter", e.Param)
	}
}

// StoreError wraps a failure of the underlying entity store.
type StoreError struct {
	// Op names the store operation, e.g. "query cast".
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("catalog: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
