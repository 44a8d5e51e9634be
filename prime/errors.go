package prime

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber is matched by errors for inputs that have no prime
	// factorization.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrRange is matched by errors for malformed or oversized intervals.
	ErrRange = errors.New("invalid range")
	// ErrOverflow marks an arithmetic step that would leave the integer
	// type. The public operations check bounds by division and never
	// return it.
	ErrOverflow = errors.New("integer overflow")
)

// InvalidNumberError reports an input below 1 passed to a factorization.
type InvalidNumberError struct {
	N     string // decimal rendering of the input, whatever its type
	Value int64  // the input itself; every rejected input fits in int64
}

func invalidNumber[T Integer](n T) *InvalidNumberError {
	return &InvalidNumberError{N: fmt.Sprint(n), Value: int64(n)}
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %s: must be greater than 0", e.N)
}

func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }

// RangeError reports a rejected [From, Through] interval.
type RangeError struct {
	From    string
	Through string
	Reason  string
}

func rangeError[T Integer](from, through T, reason string) *RangeError {
	return &RangeError{From: fmt.Sprint(from), Through: fmt.Sprint(through), Reason: reason}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%s, %s]: %s", e.From, e.Through, e.Reason)
}

func (e *RangeError) Unwrap() error { return ErrRange }
