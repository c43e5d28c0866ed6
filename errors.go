package linkedlist

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("linkedlist: type mismatch")
	ErrOutOfRange   = errors.New("linkedlist: index out of range")

	// ErrEmptyList is returned by Pop on a list without elements.
	ErrEmptyList = fmt.Errorf("%w: list is empty", ErrOutOfRange)

	// ErrSizeMismatch is returned by SetSlice when the number of values does
	// not match the number of selected positions.
	ErrSizeMismatch = fmt.Errorf("%w: value count does not match slice", ErrOutOfRange)
)

func typeMismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeMismatch, fmt.Sprintf(format, args...))
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, index, length)
}
