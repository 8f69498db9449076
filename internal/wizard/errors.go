package wizard

import "errors"

// ErrWrongPhase is returned when a State method is called out of order.
var ErrWrongPhase = errors.New("operation not allowed in the current wizard phase")

// ErrInvalidInput is wrapped by every validation error below.
var ErrInvalidInput = errors.New("invalid input")

// Validation errors for wizard answers.
var (
	errCountOutOfRange     = invalid("number of inputs and outputs must be between 1 and 10")
	errTitleRequired       = invalid("title of the column is required")
	errNameRequired        = invalid("name of the instance is required")
	errVariantCountNumber  = invalid("number of variants must be a whole number")
	errVariantCountInvalid = invalid("number of variants must be greater than 0")
	errVariantRequired     = invalid("variant value is required")
	errVariantsMismatch    = invalid("wrong number of variant values")
)

type invalidInputError struct {
	msg string
}

func invalid(msg string) error {
	return &invalidInputError{msg: msg}
}

func (e *invalidInputError) Error() string {
	return e.msg
}

func (e *invalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
