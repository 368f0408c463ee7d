package arr

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Copying & Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a freshly allocated copy of items. A nil input yields an
// empty, non-nil slice.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Slice returns a copy of items over the half-open range [from, to).
// Returns [ErrIndexOutOfRange] unless 0 <= from <= to <= len(items).
func Slice[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || to > len(items) || from > to {
		return nil, fmt.Errorf("%w: range [%d, %d) with length %d", ErrIndexOutOfRange, from, to, len(items))
	}
	return Clone(items[from:to]), nil
}

// At returns the element at index, or [ErrIndexOutOfRange] when index is
// outside [0, len(items)).
func At[T any](items []T, index int) (T, error) {
	if index < 0 || index >= len(items) {
		var zero T
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, index, len(items))
	}
	return items[index], nil
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice of the same length.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns the elements for which fn returns true, in their original
// relative order.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// FlatMap applies fn to each element and concatenates the produced slices in
// input order.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// SortStable returns a copy of items sorted by cmp. Equal elements keep
// their original relative order.
func SortStable[T any](items []T, cmp func(a, b T) int) []T {
	out := Clone(items)
	slices.SortStableFunc(out, cmp)
	return out
}

// Invert returns a comparator with the operands of cmp swapped.
func Invert[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// AsInt reports the integer value of v when its dynamic type has one of Go's
// integer kinds, including named integer types. Unsigned values above
// math.MaxInt do not fit an int and are reported as non-integer.
func AsInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	}
	return 0, false
}

// SumInts adds up items that are integer-valued. When an element is not, the
// scan stops and SumInts returns 0 together with that element's index.
// Otherwise the index is -1.
func SumInts[T any](items []T) (int, int) {
	total := 0
	for i, item := range items {
		n, ok := AsInt(item)
		if !ok {
			return 0, i
		}
		total += n
	}
	return total, -1
}

// Fold combines items into a single value as
// acc(...acc(acc(identity, items[0]), items[1])..., items[n-1]).
//
// Whenever the running value is absent (see [IsAbsent]) identity takes its
// place before acc is applied. An empty input returns identity.
func Fold[T, U any](items []T, identity U, acc func(U, T) U) U {
	running := identity
	for _, item := range items {
		if IsAbsent(running) {
			running = identity
		}
		running = acc(running, item)
	}
	return running
}

// ─────────────────────────────────────────────────────────────────────────────
// Pairing
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ZipPresent pairs keys[i] with values[i] for every position of values.
// Positions whose key is missing (i >= len(keys)) or absent are skipped.
func ZipPresent[K, V any](keys []K, values []V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(values))
	for i, v := range values {
		if i >= len(keys) || IsAbsent(keys[i]) {
			continue
		}
		out = append(out, Pair[K, V]{First: keys[i], Second: v})
	}
	return out
}
