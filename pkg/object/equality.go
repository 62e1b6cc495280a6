package object

import (
	"github.com/pseudomuto/schemata/pkg/compare"
	"github.com/pseudomuto/schemata/pkg/equals"
)

func handlerOrDefault(h equals.Handler) equals.Handler {
	if h == nil {
		return equals.Default()
	}
	return h
}

// Like reports whether a and b are the same object (same kind and key) with
// properties that pass h. A nil handler uses equals.Default().
func Like(a, b Object, h equals.Handler) bool {
	if compare.IsNil(a) || compare.IsNil(b) {
		return compare.IsNil(a) && compare.IsNil(b)
	}

	if !SameKey(a, b) {
		return false
	}

	return Equals(a, b, handlerOrDefault(h))
}

// PropertiesMatch reports whether a and b have properties that pass h, ignoring
// their keys. Objects of different kinds never match.
func PropertiesMatch(a, b Object, h equals.Handler) bool {
	if compare.IsNil(a) || compare.IsNil(b) {
		return compare.IsNil(a) && compare.IsNil(b)
	}

	if a.Kind() != b.Kind() {
		return false
	}

	return Equals(a, b, handlerOrDefault(h))
}

// Equals runs the property traversal of a and b under h. The first property vetoed
// by h stops the traversal, and h has the final word through EqualsResult.
func Equals(a, b Object, h equals.Handler) bool {
	if h.ReferenceEquals(a, b) {
		return true
	}

	pa, pb := a.Properties(), b.Properties()

	result := len(pa) == len(pb)
	for i := 0; result && i < len(pa); i++ {
		p1, p2 := pa[i], pb[i]
		if p1.Name != p2.Name {
			result = false
			break
		}

		result = h.ValueEquals(p1.Name, a, b, p1.Value, p2.Value, func() bool {
			return valuesEqual(p1.Value, p2.Value, h)
		})
	}

	return h.EqualsResult(a, b, result)
}

func valuesEqual(v1, v2 any, h equals.Handler) bool {
	if c1, ok := v1.(Collection); ok {
		c2, ok := v2.(Collection)
		return ok && collectionsLike(c1, c2, h)
	}

	if o1, ok := v1.(Object); ok {
		o2, ok := v2.(Object)
		return ok && Like(o1, o2, h)
	}

	return compare.Values(v1, v2)
}

// ToMap snapshots the properties of o, in property order. Every property is
// recorded: an object with only scalar properties yields exactly those, while a
// collection-valued property (a table's columns) is recorded as the Collection
// itself, not flattened. Nothing below o is visited.
func ToMap(o Object) *equals.PropertyMap {
	extractor := equals.NewPropertyExtractor(o)
	Equals(o, o, extractor)
	return extractor.Values()
}

// ApplyAll calls fn for o and then, depth first, for every object reachable through
// the collections o owns. Collections are visited in property order and elements in
// list order. The first error stops the walk and is returned.
func ApplyAll(o Object, fn Visitor) error {
	if err := fn(o); err != nil {
		return err
	}

	for _, p := range o.Properties() {
		c, ok := p.Value.(Collection)
		if !ok || compare.IsNil(c) {
			continue
		}

		for _, child := range c.Elements() {
			if err := ApplyAll(child, fn); err != nil {
				return err
			}
		}
	}

	return nil
}
