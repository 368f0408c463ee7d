// Package sequence provides a generic, eager pipeline over an ordered
// collection of elements. Each stage (filter, map, flat-map, sort, distinct,
// slice) produces a new, independent [Sequence], and a pipeline ends in a
// materialized collection or a scalar result:
//
//	total := sequence.Of(5, 3, 8, 1).
//	    Filter(func(n int) bool { return n > 2 }).
//	    Sorted(cmp.Compare[int]).
//	    Reduce(0, func(acc, n int) int { return acc + n }) // → 16
//
// # Eager evaluation
//
// Every stage materializes its full result before returning. There is no
// lazy evaluation, background work or cancellation; each call runs to
// completion.
//
// # Immutability
//
// No operation mutates its receiver. [Sequence.Sorted] and
// [Sequence.Reverse] sort a copy, [Sequence.ToList] returns a copy, and
// constructors copy their input. A Sequence may therefore be read from
// several goroutines at once.
//
// # Type-changing operations
//
// Go methods cannot introduce type parameters, so stages that change the
// element type or need comparable keys are package-level functions: [Map],
// [FlatMap], [ReduceTo], [ToMap], [ToMapFrom] and [ToSelfMap].
//
// # Degraded results
//
// Two operations return a degraded value instead of failing, for
// compatibility with existing callers: [Sequence.Sum] returns 0 as soon as
// one element is not an integer ([Sequence.SumStrict] reports an error
// instead), and [Sequence.Reduce] restarts from its identity after the
// accumulator returns a nil value. Both cases are logged at debug level
// through the logger installed with [SetLogger].
//
// # Output
//
// The print family ([Sequence.Print], [Sequence.Println],
// [Sequence.PrintWith], ...) writes (prefix, element, suffix) triples to
// sink.Default(); [Sequence.Emit] targets any sink.Sink.
package sequence
