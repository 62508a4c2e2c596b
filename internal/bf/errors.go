package bf

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmatchedOpen - a '[' without a closing ']'.
	ErrUnmatchedOpen = errors.New("unmatched '['")
	// ErrUnmatchedClose - a ']' without an opening '['.
	ErrUnmatchedClose = errors.New("unmatched ']'")
	// ErrStepLimit - program ran more instructions than allowed.
	ErrStepLimit = errors.New("step limit exceeded")

	errInvalidCells     = errors.New("must use at least 1 cell")
	errInvalidStepLimit = errors.New("step limit must be at least 0")
)

func newUnmatchedOpenError(pos int) error {
	return fmt.Errorf("%w. pos: %v", ErrUnmatchedOpen, pos)
}

func newUnmatchedCloseError(pos int) error {
	return fmt.Errorf("%w. pos: %v", ErrUnmatchedClose, pos)
}

func newStepLimitError(limit int64) error {
	return fmt.Errorf("%w. limit: %v", ErrStepLimit, limit)
}

func newInvalidCellsError(cells int) error {
	return fmt.Errorf("%w. cells: %v", errInvalidCells, cells)
}

func newInvalidStepLimitError(limit int64) error {
	return fmt.Errorf("%w. limit: %v", errInvalidStepLimit, limit)
}
