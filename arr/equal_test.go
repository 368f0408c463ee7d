package arr_test

import (
	"math"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-stream-utils/arr"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same ints", 1, 1, true},
		{"different types", 1, int64(1), false},
		{"slices by content", []int{1, 2}, []int{1, 2}, true},
		{"maps by content", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"structs", person{"a", 1}, person{"a", 1}, true},
		{"pointers by pointee", &person{"a", 1}, &person{"a", 1}, true},
		{"different slices", []int{1}, []int{2}, false},
		{"nils", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arr.Equal(tt.a, tt.b); got != tt.want {
				t.Fatalf("Equal(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	if arr.Fingerprint("x") != "x" {
		t.Fatal("scalars should be their own key")
	}
	if arr.Fingerprint([]int{1, 2}) != arr.Fingerprint([]int{1, 2}) {
		t.Fatal("equal slices should share a fingerprint")
	}
	if arr.Fingerprint([]int{1, 2}) == arr.Fingerprint([]int{2, 1}) {
		t.Fatal("different slices should not share a fingerprint")
	}
	if arr.Fingerprint([]int{1}) == arr.Fingerprint([]int64{1}) {
		t.Fatal("fingerprint should include the type")
	}
}

func TestIsAbsent(t *testing.T) {
	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error
	for _, v := range []any{nil, p, m, s, f, e} {
		if !arr.IsAbsent(v) {
			t.Fatalf("IsAbsent(%#v) = false; want true", v)
		}
	}
	n := 0
	for _, v := range []any{0, "", false, &n, []int{}, struct{}{}} {
		if arr.IsAbsent(v) {
			t.Fatalf("IsAbsent(%#v) = true; want false", v)
		}
	}
}

func TestDistinct(t *testing.T) {
	assertSlice(t, arr.Distinct([]string{"a", "b", "a", "c", "b"}), []string{"a", "b", "c"})
}

func TestDistinctStructural(t *testing.T) {
	got := arr.Distinct([]any{[]int{1}, 1, []int{1}, map[string]int{"k": 1}, map[string]int{"k": 1}, "1"})
	want := []any{[]int{1}, 1, map[string]int{"k": 1}, "1"}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Fatalf("Distinct mismatch (-want +got):\n%s", diff)
	}
}

func TestDistinctPointersByValue(t *testing.T) {
	got := arr.Distinct([]*person{{"a", 1}, {"a", 1}, {"b", 2}})
	if len(got) != 2 {
		t.Fatalf("Distinct len = %d; want 2", len(got))
	}
}

type node struct {
	Name string
	Next *int
}

func TestFingerprintFollowsPointers(t *testing.T) {
	a, b := 7, 7
	if arr.Fingerprint(&a) != arr.Fingerprint(&b) {
		t.Fatal("pointers to equal values should share a fingerprint")
	}
	x, y := 1, 1
	if arr.Fingerprint(node{"n", &x}) != arr.Fingerprint(node{"n", &y}) {
		t.Fatal("structs with equal pointees should share a fingerprint")
	}
	z := 2
	if arr.Fingerprint(node{"n", &x}) == arr.Fingerprint(node{"n", &z}) {
		t.Fatal("structs with different pointees should not share a fingerprint")
	}
}

func TestFingerprintMapOrder(t *testing.T) {
	m1 := map[string][]int{}
	m2 := map[string][]int{}
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		m1[k] = []int{i}
	}
	for i, k := range []string{"e", "d", "c", "b", "a"} {
		m2[k] = []int{4 - i}
	}
	if arr.Fingerprint(m1) != arr.Fingerprint(m2) {
		t.Fatal("equal maps should share a fingerprint")
	}
}

func TestFingerprintSignedZero(t *testing.T) {
	if arr.Fingerprint([]float64{0}) != arr.Fingerprint([]float64{math.Copysign(0, -1)}) {
		t.Fatal("+0 and -0 are equal and should share a fingerprint")
	}
}

func TestFingerprintCycleTerminates(t *testing.T) {
	type ring struct {
		ID   int
		Next *ring
	}
	r := &ring{ID: 1}
	r.Next = r
	s := &ring{ID: 1}
	s.Next = s
	if arr.Fingerprint(r) != arr.Fingerprint(s) {
		t.Fatal("equal cyclic values should share a fingerprint")
	}
}

func TestDistinctPointersToScalars(t *testing.T) {
	a, b, c := 7, 7, 8
	got := arr.Distinct([]*int{&a, &b, &c})
	if len(got) != 2 || got[0] != &a || got[1] != &c {
		t.Fatalf("Distinct = %v; want [&a &c]", got)
	}
}

func TestDistinctStructsWithPointerFields(t *testing.T) {
	x, y := 1, 1
	got := arr.Distinct([]node{{"n", &x}, {"n", &y}, {"n", nil}})
	if len(got) != 2 || got[0].Next != &x || got[1].Next != nil {
		t.Fatalf("Distinct = %v; want first and nil-pointer nodes", got)
	}
}

func TestDistinctKeepsNaN(t *testing.T) {
	got := arr.Distinct([]float64{math.NaN(), math.NaN(), 1})
	if len(got) != 3 {
		t.Fatalf("Distinct len = %d; want 3 (NaN is never equal to itself)", len(got))
	}
}

func TestDistinctIdempotent(t *testing.T) {
	once := arr.Distinct([]int{3, 1, 3, 2, 1})
	assertSlice(t, arr.Distinct(once), once)
}
