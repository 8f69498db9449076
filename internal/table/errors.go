package table

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Use errors.Is to test for them.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrIO               = errors.New("i/o failure")
)

// ShapeError reports variants that do not fit the declared columns.
type ShapeError struct {
	// Want is the number of variants the columns declare.
	Want int
	// Got is the number of variants supplied.
	Got int
	// Reason describes structural problems other than a count mismatch.
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrShapeMismatch, e.Reason)
	}
	return fmt.Sprintf("%s: columns declare %d variants, got %d", ErrShapeMismatch, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrShapeMismatch) succeed.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// CapacityError reports a combination count above the configured ceiling.
type CapacityError struct {
	Rows  int
	Limit int
	// Overflow is set when the row count does not fit in an int.
	Overflow bool
}

func (e *CapacityError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("%s: row count overflows (limit %d)", ErrCapacityExceeded, e.Limit)
	}
	return fmt.Sprintf("%s: %d rows exceed the limit of %d", ErrCapacityExceeded, e.Rows, e.Limit)
}

// Is makes errors.Is(err, ErrCapacityExceeded) succeed.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// IOError reports a failure while writing a table.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", ErrIO, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

// Is makes errors.Is(err, ErrIO) succeed.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}
