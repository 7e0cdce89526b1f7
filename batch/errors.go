// Copyright © 2018 Geoff Holden <geoff@geoffholden.com>

package batch

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField       = errors.New("unknown field")
	ErrTimestampReference = errors.New("timestamp column cannot be the reference field")
	ErrMissingField       = errors.New("field missing from record")
)

// ParseError is returned for a field value that is not a number.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError locates a failed conversion. Record is the zero-based index in
// Collection.Records, or -1 when the field itself is unusable.
type FieldError struct {
	Record int
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d, field %q: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
