package sequence

import "fmt"

// Entry is one key/value pair of a map, the element type produced by
// [FromMap] and [FromOrderedMap].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// String returns "key=value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}
