package sequence

// This file contains the package-level stages that change the element type
// or need comparable keys. Go methods cannot introduce their own type
// parameters, so these are plain functions that compose with method chains:
//
//	lengths := sequence.Map(
//	    sequence.Of("a", "bb", "ccc").Filter(func(s string) bool { return s != "bb" }),
//	    func(s string) int { return len(s) },
//	)

import (
	"github.com/hasbyte1/go-stream-utils/arr"
)

// Map applies fn to every element and returns a Sequence of the results,
// with the same length and order.
//
//	sequence.Map(sequence.Of(1, 2, 3), strconv.Itoa) // → ["1" "2" "3"]
func Map[T, U any](s *Sequence[T], fn func(T) U) *Sequence[U] {
	return wrap(arr.Map(s.buf(), fn))
}

// FlatMap applies fn to every element and concatenates the returned
// sequences: outer order first, then inner order. Duplicates are kept and a
// nil inner sequence contributes nothing.
//
//	sequence.FlatMap(sequence.Of(1, 2), func(n int) *sequence.Sequence[int] {
//	    return sequence.Of(n, n*10)
//	}) // → [1 10 2 20]
func FlatMap[T, U any](s *Sequence[T], fn func(T) *Sequence[U]) *Sequence[U] {
	return wrap(arr.FlatMap(s.buf(), func(item T) []U { return fn(item).buf() }))
}

// ReduceTo folds s into a value of another type, with the same association
// order and nil handling as [Sequence.Reduce].
//
//	sequence.ReduceTo(sequence.Of("a", "bb"), 0, func(n int, s string) int {
//	    return n + len(s)
//	}) // → 3
func ReduceTo[T, U any](s *Sequence[T], identity U, acc func(U, T) U) U {
	return arr.Fold(s.buf(), identity, acc)
}

// ToMap pairs keys[i] with the i-th element of s. Positions without a key
// (keys shorter than s) or with a nil key are skipped. When a key repeats,
// the later element wins and the key keeps its first position.
func ToMap[T any, K comparable](s *Sequence[T], keys []K) *OrderedMap[K, T] {
	if dropped := s.Count() - len(keys); dropped > 0 {
		logger().Debug().
			Int("elements", s.Count()).
			Int("keys", len(keys)).
			Msg("to map: elements without a key dropped")
	}
	m := NewOrderedMap[K, T]()
	for _, p := range arr.ZipPresent(keys, s.buf()) {
		m.Set(p.First, p.Second)
	}
	return m
}

// ToMapFrom is [ToMap] with the keys taken from any [Enumerable], such as
// another Sequence.
func ToMapFrom[T any, K comparable](s *Sequence[T], keys Enumerable[K]) *OrderedMap[K, T] {
	var ks []K
	if keys != nil {
		ks = keys.ToList()
	}
	return ToMap(s, ks)
}

// ToSelfMap maps every element to itself. The map holds each distinct
// element once (later duplicates overwrite earlier ones) while s keeps all
// of them. T must be comparable at runtime; an interface element holding a
// slice or map panics like any Go map key would.
func ToSelfMap[T comparable](s *Sequence[T]) *OrderedMap[T, T] {
	return ToMap(s, s.buf())
}
