// Package equals provides the pluggable comparison strategies used when deciding
// whether two schema objects are "like" each other.
//
// A Handler is consulted once per property while two objects are traversed. The
// return value of ValueEquals is a veto, not a confirmation:
//
//   - false short-circuits the comparison; the objects are not equal
//   - true means "no objection" and the traversal moves on to the next property
//
// Filtering handlers use the second form to skip properties entirely. An
// ExcludeHandler returns true for every excluded property without looking at the
// values, and an IncludeHandler does the same for every property that was not
// included. All other properties are compared by calling the lazily evaluated
// Comparator supplied by the traversal.
//
// # Shared defaults
//
// Default returns a copy of the process wide default handler. Callers customize the
// copy freely:
//
//	h := equals.Default().Add("comment", "column.defaultValue")
//	object.Like(a, b, h)
//
// Handlers carry no locks. A handler must not be mutated while a comparison using it
// is running; Clone before mutating anything shared.
//
// # Property extraction
//
// PropertyExtractor reuses the same traversal to snapshot the properties of a single
// object into an ordered PropertyMap. It never vetoes, always forces a full
// traversal, and reports the objects as unequal so that no caller mistakes it for a
// predicate.
package equals
