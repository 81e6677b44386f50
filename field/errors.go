package field

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every *InvalidParameterError.
var ErrInvalidParameter = errors.New("invalid field parameter")

// InvalidParameterError reports why a characteristic q was rejected.
type InvalidParameterError struct {
	Q      int
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("q = %d rejected: %s", e.Q, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// Validate checks that q can serve as the characteristic of GF(q^2).
func Validate(q int) error {
	if q < 2 {
		return &InvalidParameterError{Q: q, Reason: "expected a prime number >= 2"}
	}
	if !IsPrime(q) {
		return &InvalidParameterError{Q: q, Reason: "expected a prime number"}
	}
	return nil
}
