package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Sequence operations.
var (
	// ErrIndexOutOfRange is returned when an index or range lies outside
	// [0, Count()].
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrEmptySequence is returned by Max and Min on an empty sequence. It
	// also matches ErrIndexOutOfRange.
	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrIndexOutOfRange)

	// ErrNotInteger is returned by SumStrict for an element that is not an
	// integer.
	ErrNotInteger = errors.New("sequence: element is not an integer")
)
