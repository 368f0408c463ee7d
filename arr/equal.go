package arr

import (
	"encoding/binary"
	"hash"
	"io"
	"math"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// fingerprint is the bucket key for values that cannot be used as map keys
// directly.
type fingerprint [blake2b.Size256]byte

// Limits on the fingerprint walk. Past them the walk stops adding input,
// which can only merge buckets, never split equal values apart.
const (
	maxFingerprintDepth = 16
	maxFingerprintNodes = 1 << 12
)

// Equal reports whether a and b are structurally equal. Pointers are
// followed, and slices, maps and structs are compared element by element.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Fingerprint returns a map key for v such that [Equal] values always share
// a key. Scalars are returned unchanged. Any other value is walked the way
// reflect.DeepEqual walks it, following pointers and interfaces, and the
// contents are hashed with BLAKE2b-256. Map entries are combined in an
// order-independent way.
func Fingerprint(v any) any {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return v
	}
	w := newWalker(maxFingerprintNodes)
	rv := reflect.ValueOf(v)
	w.str(rv.Type().String())
	w.value(rv, 0)
	return w.sum()
}

type walker struct {
	h       hash.Hash
	budget  int
	scratch [8]byte
}

func newWalker(budget int) *walker {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return &walker{h: h, budget: budget}
}

func (w *walker) sum() fingerprint {
	var key fingerprint
	w.h.Sum(key[:0])
	return key
}

func (w *walker) u64(n uint64) {
	binary.LittleEndian.PutUint64(w.scratch[:], n)
	w.h.Write(w.scratch[:])
}

func (w *walker) str(s string) {
	w.u64(uint64(len(s)))
	io.WriteString(w.h, s)
}

func (w *walker) float(f float64) {
	// +0 and -0 are equal.
	if f == 0 {
		f = 0
	}
	w.u64(math.Float64bits(f))
}

func (w *walker) value(rv reflect.Value, depth int) {
	if w.budget <= 0 || depth > maxFingerprintDepth {
		return
	}
	w.budget--
	if !rv.IsValid() {
		w.u64(0)
		return
	}
	w.u64(uint64(rv.Kind()))

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			w.u64(1)
		} else {
			w.u64(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.u64(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.u64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		w.float(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		w.float(real(c))
		w.float(imag(c))
	case reflect.String:
		w.str(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			w.u64(0)
			return
		}
		w.u64(1)
		w.value(rv.Elem(), depth+1)
	case reflect.Interface:
		if rv.IsNil() {
			w.u64(0)
			return
		}
		elem := rv.Elem()
		w.str(elem.Type().String())
		w.value(elem, depth+1)
	case reflect.Slice:
		if rv.IsNil() {
			w.u64(0)
			return
		}
		w.u64(1)
		w.elems(rv, depth)
	case reflect.Array:
		w.elems(rv, depth)
	case reflect.Struct:
		for i := range rv.NumField() {
			w.value(rv.Field(i), depth+1)
		}
	case reflect.Map:
		if rv.IsNil() {
			w.u64(0)
			return
		}
		w.u64(1)
		w.u64(uint64(rv.Len()))
		w.entries(rv, depth)
	default:
		// Funcs, channels and unsafe pointers: only nil-ness is hashed.
		if rv.IsNil() {
			w.u64(0)
		} else {
			w.u64(1)
		}
	}
}

func (w *walker) elems(rv reflect.Value, depth int) {
	w.u64(uint64(rv.Len()))
	for i := range rv.Len() {
		w.value(rv.Index(i), depth+1)
	}
}

// entries hashes every map entry on its own walker and XORs the digests, so
// iteration order does not matter. Each entry starts from the same budget.
func (w *walker) entries(rv reflect.Value, depth int) {
	var acc fingerprint
	used := 0
	it := rv.MapRange()
	for it.Next() {
		sub := newWalker(w.budget)
		sub.value(it.Key(), depth+1)
		sub.value(it.Value(), depth+1)
		used += w.budget - sub.budget
		digest := sub.sum()
		for i := range acc {
			acc[i] ^= digest[i]
		}
	}
	w.h.Write(acc[:])
	w.budget = max(w.budget-used, 0)
}

// IsAbsent reports whether v is a nil interface or a nil pointer, map,
// slice, function or channel.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Distinct returns items with later structural duplicates removed. The
// first occurrence of each value keeps its position.
func Distinct[T any](items []T) []T {
	buckets := make(map[any][]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := Fingerprint(item)
		if containsEqual(out, buckets[key], item) {
			continue
		}
		buckets[key] = append(buckets[key], len(out))
		out = append(out, item)
	}
	return out
}

func containsEqual[T any](kept []T, candidates []int, item T) bool {
	for _, j := range candidates {
		if Equal(kept[j], item) {
			return true
		}
	}
	return false
}
