// Package arr provides the slice-level building blocks behind the sequence
// package. Every helper is generic and operates on plain []T values, no
// wrapper type required, and every helper that returns a slice returns a
// freshly allocated one:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	asc   := arr.SortStable([]int{3, 1, 2}, cmp.Compare[int])
//	uniq  := arr.Distinct([]any{1, "a", 1, []int{2}, []int{2}}) // → [1 a [2]]
//	total := arr.Fold([]int{1, 2, 3}, 0, func(acc, n int) int { return acc + n })
//
// # Equality
//
// [Distinct] and [Equal] use structural equality: two values are equal when
// reflect.DeepEqual says so, so slices, maps and pointed-to structs compare
// by content. Non-scalar values are bucketed by a BLAKE2b digest of their
// contents, walked the same way reflect.DeepEqual walks them, before the
// deep comparison runs.
//
// # Absent values
//
// [IsAbsent] treats nil interfaces, pointers, maps, slices, funcs and
// channels as "no value". [Fold] substitutes its identity for an absent
// running value and [ZipPresent] skips absent keys.
package arr
