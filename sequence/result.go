package sequence

import "fmt"

// Result holds the single winning element of [Sequence.Max] or
// [Sequence.Min].
type Result[T any] struct {
	value T
}

// Get returns the element.
func (r Result[T]) Get() T { return r.value }

// String formats the element with fmt.Sprint.
func (r Result[T]) String() string { return fmt.Sprint(r.value) }
