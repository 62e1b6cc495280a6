// Package compare provides the value equality helpers used when comparing schema
// metadata.
//
// Values is the equality used for scalar properties (names of data types, defaults,
// flags, numeric bounds). It treats nil and empty collections as equal and
// dereferences pointers, so optional attributes loaded from different sources compare
// the same way.
//
// Slices, SlicesUnordered and Match operate on element slices with a caller supplied
// equality function. They back the comparison of ordered and unordered collections:
//
//	// ordered: columns must match position by position
//	compare.Slices(a, b, like)
//
//	// unordered: every index must have a partner regardless of position
//	compare.SlicesUnordered(a, b, like)
//
//	// pairing: which elements correspond, and which are left over
//	pairs, deleted, added := compare.Match(a, b, sameKey)
package compare
