package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrEmptyInput signals a statistic was requested on a zero-length sample.
	ErrEmptyInput = errors.New("empty input sample")

	// ErrInsufficientData signals the sample is too small for the statistic
	// (e.g. unbiased variance needs n >= 2).
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateDistribution signals a zero-variance / zero-IQR sample for
	// a statistic that has no documented sentinel fallback.
	ErrDegenerateDistribution = errors.New("degenerate distribution")

	// ErrInvalidParameter signals a caller-supplied parameter out of range
	// (quantile outside [0,1], non-positive bin width, mismatched pair lengths).
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Error constructors with context
func NewEmptyInputError(statistic string) error {
	return fmt.Errorf("%w: %s requires at least one value", ErrEmptyInput, statistic)
}

func NewInsufficientDataError(statistic string, need, got int) error {
	return fmt.Errorf("%w: %s requires n >= %d, got %d", ErrInsufficientData, statistic, need, got)
}

func NewDegenerateError(statistic string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrDegenerateDistribution, statistic, reason)
}

func NewInvalidParameterError(param string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParameter, param, reason)
}

// Error checking helpers
func IsEmptyInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsDegenerateError(err error) bool {
	return errors.Is(err, ErrDegenerateDistribution)
}

func IsInvalidParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
