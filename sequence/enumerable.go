package sequence

import "iter"

// Enumerable is the read-only surface of a [Sequence][T].
//
// Accept Enumerable in your own functions so that callers can pass a
// Sequence or any other ordered collection without depending on the
// concrete type. [ToMapFrom] takes its keys this way.
type Enumerable[T any] interface {
	// Count returns the number of elements.
	Count() int

	// Get returns the element at index or an error when index is out of
	// range.
	Get(index int) (T, error)

	// ToList returns the elements as a new slice.
	ToList() []T

	// Values returns an iterator over the elements in order.
	Values() iter.Seq[T]

	// ForEach calls fn for every element in order.
	ForEach(fn func(T))
}

var _ Enumerable[int] = (*Sequence[int])(nil)
