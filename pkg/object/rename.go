package object

import (
	"slices"

	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/state"
)

// Rename is a deleted object and an added sibling with matching properties.
type Rename struct {
	Parent *Difference
	From   *Difference
	To     *Difference
}

// DetectRenames finds probable renames in a difference tree.
//
// Below every node it looks for a deleted child and an added child that:
//  1. are of the same kind
//  2. have different keys
//  3. have properties matching under h (everything except the key)
//
// Deleted children are considered in key order and each claims the first unclaimed
// added child, in key order, that matches. The tree itself is not modified; renames
// remain a deletion and an addition.
func DetectRenames(d *Difference, h equals.Handler) []Rename {
	h = handlerOrDefault(h)

	var renames []Rename
	_ = d.Walk(func(n *Difference, _ int) error {
		renames = append(renames, detectRenames(n, h)...)
		return nil
	})
	return renames
}

func detectRenames(parent *Difference, h equals.Handler) []Rename {
	var deleted, added []*Difference
	for _, c := range parent.Children {
		switch c.State {
		case state.Deleted:
			deleted = append(deleted, c)
		case state.Added:
			added = append(added, c)
		}
	}

	if len(deleted) == 0 || len(added) == 0 {
		return nil
	}

	byKey := func(x, y *Difference) int { return x.Key.Compare(y.Key) }
	slices.SortStableFunc(deleted, byKey)
	slices.SortStableFunc(added, byKey)

	matched := make([]bool, len(added))

	var renames []Rename
	for _, from := range deleted {
		for i, to := range added {
			if matched[i] || from.Kind != to.Kind || from.Key == to.Key {
				continue
			}

			if PropertiesMatch(from.Source, to.Target, h) {
				matched[i] = true
				renames = append(renames, Rename{Parent: parent, From: from, To: to})
				break
			}
		}
	}

	return renames
}
