package payments

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingReference is returned when a verification is requested without a reference
var ErrMissingReference = errors.New("missing transaction reference")

// FieldError describes one invalid request field
type FieldError struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Path     string      `json:"path"`
	Location string      `json:"location"`
}

// ValidationError is returned when a request is malformed. No gateway call
// or store write happens once it is produced.
type ValidationError struct {
	Fields []FieldError
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	paths := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		paths = append(paths, f.Path)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(paths, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GatewayError is returned when the payment gateway answers with a non-2xx
// status, an unreadable body, or cannot be reached at all (StatusCode 0).
type GatewayError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode == 0:
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("gateway %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("gateway %s: status %d", e.Op, e.StatusCode)
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// StoreErrorKind classifies store failures
type StoreErrorKind int

const (
	// StoreErrorIO covers connection, query and scan failures
	StoreErrorIO StoreErrorKind = iota
	// StoreErrorConstraint is a uniqueness violation on reference
	StoreErrorConstraint
)

func (k StoreErrorKind) String() string {
	if k == StoreErrorConstraint {
		return "constraint"
	}
	return "io"
}

// StoreError is returned by the transaction store
type StoreError struct {
	Kind StoreErrorKind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsConstraintError reports whether err is a uniqueness violation from the store
func IsConstraintError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Kind == StoreErrorConstraint
}
