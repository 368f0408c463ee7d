package sequence

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/rivo/uniseg"

	"github.com/hasbyte1/go-stream-utils/arr"
)

// Sequence is an immutable, ordered, finite collection of elements of type T.
//
// Every stage returns a *new* Sequence backed by a freshly allocated buffer;
// the receiver is never modified and no buffer is shared between stages.
// A nil *Sequence behaves like an empty one.
//
// # Creating a sequence
//
//	s := sequence.Of(1, 2, 3)
//	s := sequence.From([]string{"a", "b"})
//	s := sequence.OfString("héllo")   // → ["h" "é" "l" "l" "o"]
//	s := sequence.FromMap(m)          // → Entry[K, V] per map entry
//
// # Method chaining
//
//	top, err := sequence.Of(4, 1, 3, 1, 2).
//	    Distinct().
//	    Reverse(cmp.Compare[int]).
//	    Limit(2) // → [4 3]
type Sequence[T any] struct {
	items []T
}

// wrap takes ownership of items without copying.
func wrap[T any](items []T) *Sequence[T] {
	if items == nil {
		items = []T{}
	}
	return &Sequence[T]{items: items}
}

func (s *Sequence[T]) buf() []T {
	if s == nil {
		return nil
	}
	return s.items
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a Sequence from a variadic list of elements (copied).
func Of[T any](items ...T) *Sequence[T] {
	return wrap(arr.Clone(items))
}

// From creates a Sequence from a slice (copied).
func From[T any](items []T) *Sequence[T] {
	return wrap(arr.Clone(items))
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return wrap([]T{})
}

// OfString splits s into one single-character string per Unicode code
// point, in order. Invalid UTF-8 bytes become "�".
func OfString(s string) *Sequence[string] {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return wrap(out)
}

// OfGraphemes splits s into user-perceived characters (extended grapheme
// clusters), so "é" or a flag emoji stays a single element.
func OfGraphemes(s string) *Sequence[string] {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return wrap(out)
}

// FromSet creates a Sequence from the members of set. The order is the
// set's iteration order, which Go does not fix.
func FromSet[T comparable](set map[T]struct{}) *Sequence[T] {
	return wrap(slices.AppendSeq(make([]T, 0, len(set)), maps.Keys(set)))
}

// FromMap creates a Sequence with one [Entry] per map entry, in map
// iteration order.
func FromMap[K comparable, V any](m map[K]V) *Sequence[Entry[K, V]] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return wrap(out)
}

// OfKeys creates a Sequence of the keys of m, in map iteration order.
func OfKeys[K comparable, V any](m map[K]V) *Sequence[K] {
	return wrap(slices.AppendSeq(make([]K, 0, len(m)), maps.Keys(m)))
}

// OfValues creates a Sequence of the values of m, in map iteration order.
func OfValues[K comparable, V any](m map[K]V) *Sequence[V] {
	return wrap(slices.AppendSeq(make([]V, 0, len(m)), maps.Values(m)))
}

// FromOrderedMap creates a Sequence with one [Entry] per entry of m, in
// insertion order.
func FromOrderedMap[K comparable, V any](m *OrderedMap[K, V]) *Sequence[Entry[K, V]] {
	out := make([]Entry[K, V], 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return wrap(out)
}

// Collect creates a Sequence from every value produced by seq.
func Collect[T any](seq iter.Seq[T]) *Sequence[T] {
	return wrap(slices.Collect(seq))
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements.
func (s *Sequence[T]) Count() int { return len(s.buf()) }

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool { return len(s.buf()) == 0 }

// Get returns the element at index, or an error wrapping
// [ErrIndexOutOfRange] when index is outside [0, Count()).
func (s *Sequence[T]) Get(index int) (T, error) {
	item, err := arr.At(s.buf(), index)
	if err != nil {
		return item, fmt.Errorf("%w: index %d of %d elements", ErrIndexOutOfRange, index, s.Count())
	}
	return item, nil
}

// ToList returns a copy of the elements as a plain slice.
func (s *Sequence[T]) ToList() []T { return arr.Clone(s.buf()) }

// All returns an iterator over index/element pairs.
func (s *Sequence[T]) All() iter.Seq2[int, T] { return slices.All(s.buf()) }

// Values returns an iterator over the elements.
func (s *Sequence[T]) Values() iter.Seq[T] { return slices.Values(s.buf()) }

// String renders the elements as "[e0 e1 ...]".
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.buf())
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sorted returns a new sequence sorted by cmp. The sort is stable: equal
// elements keep their relative order.
func (s *Sequence[T]) Sorted(cmp func(a, b T) int) *Sequence[T] {
	return wrap(arr.SortStable(s.buf(), cmp))
}

// Reverse returns a new sequence sorted by the inverse of cmp, as if its
// operands were swapped. It re-sorts; it does not reverse the current
// order (see [Sequence.ToStack] for that).
func (s *Sequence[T]) Reverse(cmp func(a, b T) int) *Sequence[T] {
	return wrap(arr.SortStable(s.buf(), arr.Invert(cmp)))
}

// ToStack returns a new sequence with the current order fully reversed.
func (s *Sequence[T]) ToStack() *Sequence[T] {
	return wrap(arr.Reverse(s.buf()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new sequence with the elements for which pred returns
// true, in their original relative order.
func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	return wrap(arr.Filter(s.buf(), pred))
}

// Distinct returns a new sequence without later duplicates. Equality is
// structural: slices, maps and pointed-to values compare by content. The
// first occurrence of each value keeps its position.
func (s *Sequence[T]) Distinct() *Sequence[T] {
	return wrap(arr.Distinct(s.buf()))
}

// Split returns the elements in the half-open range [from, to). It fails
// with [ErrIndexOutOfRange] unless 0 <= from <= to <= Count().
func (s *Sequence[T]) Split(from, to int) (*Sequence[T], error) {
	part, err := arr.Slice(s.buf(), from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: range [%d, %d) of %d elements", ErrIndexOutOfRange, from, to, s.Count())
	}
	return wrap(part), nil
}

// Limit returns the first n elements. It is Split(0, n), so n larger than
// Count() is an error.
func (s *Sequence[T]) Limit(n int) (*Sequence[T], error) {
	return s.Split(0, n)
}

// Skip returns the elements after the first from. It is
// Split(from, Count()).
func (s *Sequence[T]) Skip(from int) (*Sequence[T], error) {
	return s.Split(from, s.Count())
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the elements when every one of them is an integer (any of
// Go's integer kinds). As soon as one element is not, Sum stops and
// returns 0 for the whole sequence. Use [Sequence.SumStrict] to get an
// error instead.
func (s *Sequence[T]) Sum() int {
	total, at := arr.SumInts(s.buf())
	if at >= 0 {
		logger().Debug().
			Int("index", at).
			Str("type", fmt.Sprintf("%T", s.items[at])).
			Msg("sum: non-integer element, result reset to 0")
	}
	return total
}

// SumStrict adds up the elements, or returns an error wrapping
// [ErrNotInteger] that names the first element that is not an integer.
func (s *Sequence[T]) SumStrict() (int, error) {
	total, at := arr.SumInts(s.buf())
	if at >= 0 {
		return 0, fmt.Errorf("%w: index %d has type %T", ErrNotInteger, at, s.items[at])
	}
	return total, nil
}

// Max returns the largest element according to cmp. Scanning from the
// first element, the running best is replaced whenever cmp(best, candidate)
// is negative, so ties keep the earliest element. Returns
// [ErrEmptySequence] when there are no elements.
func (s *Sequence[T]) Max(cmp func(a, b T) int) (Result[T], error) {
	return s.scan(cmp, func(c int) bool { return c < 0 })
}

// Min returns the smallest element according to cmp; the running best is
// replaced whenever cmp(best, candidate) is positive. Ties keep the
// earliest element. Returns [ErrEmptySequence] when there are no elements.
func (s *Sequence[T]) Min(cmp func(a, b T) int) (Result[T], error) {
	return s.scan(cmp, func(c int) bool { return c > 0 })
}

func (s *Sequence[T]) scan(cmp func(a, b T) int, replace func(int) bool) (Result[T], error) {
	items := s.buf()
	if len(items) == 0 {
		return Result[T]{}, ErrEmptySequence
	}
	best := items[0]
	for _, item := range items {
		if replace(cmp(best, item)) {
			best = item
		}
	}
	return Result[T]{value: best}, nil
}

// AnyMatch reports whether filtering by pred keeps at least one element.
// pred is evaluated for every element.
func (s *Sequence[T]) AnyMatch(pred func(T) bool) bool {
	return s.Filter(pred).Count() > 0
}

// AllMatch reports whether filtering by pred keeps every element. It is
// true for an empty sequence.
func (s *Sequence[T]) AllMatch(pred func(T) bool) bool {
	return s.Filter(pred).Count() == s.Count()
}

// NoneMatch reports whether no element satisfies pred.
func (s *Sequence[T]) NoneMatch(pred func(T) bool) bool {
	return !s.AnyMatch(pred)
}

// Reduce folds the sequence into one value as
// acc(...acc(acc(identity, e0), e1)..., eN-1).
//
// When acc returns a nil value (nil pointer, interface, map, slice, func or
// channel) the next step starts again from identity. An empty or nil
// sequence returns identity unchanged. The fold is iterative, so long
// sequences do not grow the call stack.
func (s *Sequence[T]) Reduce(identity T, acc func(T, T) T) T {
	items := s.buf()
	step := 0
	return arr.Fold(items, identity, func(running, item T) T {
		out := acc(running, item)
		step++
		if step < len(items) && arr.IsAbsent(out) {
			logger().Debug().
				Int("index", step-1).
				Msg("reduce: accumulator returned no value, identity substituted")
		}
		return out
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn for every element, in order.
func (s *Sequence[T]) ForEach(fn func(T)) {
	for _, item := range s.buf() {
		fn(item)
	}
}

// ForEachOrder calls fn for every element in the order given by cmp. The
// sequence itself keeps its order.
func (s *Sequence[T]) ForEachOrder(fn func(T), cmp func(a, b T) int) {
	for _, item := range arr.SortStable(s.buf(), cmp) {
		fn(item)
	}
}
