package wrapnum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBound - single bound constructor got a bound below 1.
	ErrInvalidBound = errors.New("bound must be at least 1")
	// ErrInvertedRange - max is less than min.
	ErrInvertedRange = errors.New("max cannot be less than min")
)

func newInvalidBoundError[T any](n T) error {
	return fmt.Errorf("%w. n: %v", ErrInvalidBound, n)
}

func newInvertedRangeError[T any](lo, hi T) error {
	return fmt.Errorf("%w. min: %v max: %v", ErrInvertedRange, lo, hi)
}
