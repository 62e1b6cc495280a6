package compare

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// IsNil reports whether v is nil or holds a nil pointer, slice, map, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// Values compares two property values for equality.
//
// Nil values are only equal to other nil values. Pointers are compared by the
// values they point to, and empty slices and maps are equal to nil ones.
//
// Example:
//
//	compare.Values("integer", "integer")          // true
//	compare.Values(utils.Ptr(1), utils.Ptr(1))    // true
//	compare.Values([]string{}, []string(nil))     // true
func Values(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}

	if samePointer(a, b) {
		return true
	}

	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

func samePointer(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	return va.Kind() == reflect.Pointer &&
		va.Type() == vb.Type() &&
		va.Pointer() == vb.Pointer()
}

// Slices compares two slices for equality using an equality function for elements.
// Returns true if both slices have the same length and all corresponding elements are equal.
//
// Example:
//
//	compare.Slices(t.Columns.All(), other.Columns.All(),
//	    func(a, b *catalog.Column) bool { return object.Like(a, b, h) })
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SlicesUnordered compares two slices for equality regardless of order.
// Returns true if both slices contain the same elements (by the equality function).
func SlicesUnordered[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}

	_, unmatchedA, _ := Match(a, b, equalFunc)
	return len(unmatchedA) == 0
}

// Match pairs elements of a with elements of b using equalFunc. Each element of b is
// matched at most once, and elements of a claim the earliest unmatched element of b.
//
// It returns the matched index pairs in the order of a, followed by the indexes of a
// and b that were left unmatched.
func Match[T any](a, b []T, equalFunc func(T, T) bool) (pairs [][2]int, unmatchedA, unmatchedB []int) {
	// Track which elements in b have been matched
	matched := make([]bool, len(b))

	for i, aElem := range a {
		found := false
		for j, bElem := range b {
			if !matched[j] && equalFunc(aElem, bElem) {
				matched[j] = true
				pairs = append(pairs, [2]int{i, j})
				found = true
				break
			}
		}
		if !found {
			unmatchedA = append(unmatchedA, i)
		}
	}

	for j, ok := range matched {
		if !ok {
			unmatchedB = append(unmatchedB, j)
		}
	}

	return pairs, unmatchedA, unmatchedB
}
