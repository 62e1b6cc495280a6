// Package object defines the contracts shared by every schema object and the
// generic machinery built on them: likeness, property snapshots, traversal and
// difference trees.
//
// An Object exposes three things: its kind ("table", "column", ...), its identity
// Key and an ordered list of Properties. Properties hold scalar values, nested
// objects or owned collections (List). Nothing else is needed to compare, diff,
// snapshot or walk a graph of objects, so concrete entity types stay plain structs
// that embed Named and list their properties.
//
// # Likeness
//
// Like(a, b, h) is true when a and b are of the same kind, share the same Key and
// every property passes the Handler. Names are identity, not properties: renaming a
// column makes it a different column.
//
// # Differences
//
// Compare(a, b, h) builds a Difference tree mirroring the graph. Every node carries
// a state.State and the changed scalar properties. Ordered collections are aligned
// with the LCS engine from package diff, unordered collections are paired by Key.
// An element that only moved inside an ordered collection is reported Modified
// with a "position" change rather than as a deletion and an addition.
//
//	d := object.Compare(prodCatalog, devCatalog, equals.Default().Add("comment"))
//	_ = d.Walk(func(n *object.Difference, depth int) error {
//	    fmt.Printf("%*s%s %s\n", depth*2, "", n.State.Symbol(), n.Label())
//	    return nil
//	})
package object
