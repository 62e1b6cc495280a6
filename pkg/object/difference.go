package object

import (
	"slices"

	"github.com/pseudomuto/schemata/pkg/compare"
	"github.com/pseudomuto/schemata/pkg/diff"
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/state"
)

// PositionProperty names the change recorded for an element of an ordered
// collection that moved.
const PositionProperty = "position"

type (
	// Difference is a node of a difference tree. Source is the original object and
	// Target the new one; either is nil for added or deleted objects.
	Difference struct {
		Kind       string
		Key        Key
		State      state.State
		Source     Object
		Target     Object
		Properties []PropertyChange
		Children   []*Difference
	}

	// PropertyChange is a changed scalar property of a modified object.
	PropertyChange struct {
		Name   string
		State  state.State
		Source any
		Target any
	}

	// DifferenceStats counts the changed objects of a difference tree.
	DifferenceStats struct {
		Added      int
		Modified   int
		Deleted    int
		Properties int
	}
)

// Compare builds the difference tree turning a into b under h. A nil handler uses
// equals.Default(). Either object may be nil; when both are nil the result is nil.
//
// The roots are paired whatever their keys, so two catalogs loaded from different
// sources compare even when named differently. Below the roots, objects are paired
// by Key: a renamed object shows up as a deletion and an addition. An element that
// moved within an ordered collection is compared with its new self and carries a
// PositionProperty change.
func Compare(a, b Object, h equals.Handler) *Difference {
	h = handlerOrDefault(h)

	aNil, bNil := compare.IsNil(a), compare.IsNil(b)
	switch {
	case aNil && bNil:
		return nil
	case aNil:
		return whole(b, state.Added, h)
	case bNil:
		return whole(a, state.Deleted, h)
	}

	d := &Difference{Kind: b.Kind(), Key: b.Key(), Source: a, Target: b}
	if a.Kind() != b.Kind() {
		d.State = state.Modified
		return d
	}

	pa, pb := a.Properties(), b.Properties()
	for i := range min(len(pa), len(pb)) {
		p1, p2 := pa[i], pb[i]
		if p1.Name != p2.Name || equals.Skips(h, p1.Name, a) {
			continue
		}

		c1, isCollection := p1.Value.(Collection)
		if isCollection {
			c2, _ := p2.Value.(Collection)
			d.Children = append(d.Children, pairCollections(c1, c2, h)...)
			continue
		}

		o1, isObject := p1.Value.(Object)
		if isObject {
			o2, _ := p2.Value.(Object)
			if child := Compare(o1, o2, h); child != nil {
				d.Children = append(d.Children, child)
			}
			continue
		}

		v1, v2 := p1.Value, p2.Value
		if h.ValueEquals(p1.Name, a, b, v1, v2, func() bool { return compare.Values(v1, v2) }) {
			continue
		}

		st := state.Of(v1, v2)
		if st == state.Unchanged {
			st = state.Modified
		}
		d.Properties = append(d.Properties, PropertyChange{Name: p1.Name, State: st, Source: v1, Target: v2})
	}

	d.State = state.Unchanged
	if len(d.Properties) > 0 || slices.ContainsFunc(d.Children, (*Difference).HasChanges) {
		d.State = state.Modified
	}

	return d
}

// whole describes an object that exists on one side only, along with everything it
// owns.
func whole(o Object, st state.State, h equals.Handler) *Difference {
	d := &Difference{Kind: o.Kind(), Key: o.Key(), State: st}
	if st == state.Added {
		d.Target = o
	} else {
		d.Source = o
	}

	for _, p := range o.Properties() {
		if equals.Skips(h, p.Name, o) {
			continue
		}

		c, ok := p.Value.(Collection)
		if !ok || compare.IsNil(c) {
			continue
		}

		for _, child := range c.Elements() {
			d.Children = append(d.Children, whole(child, st, h))
		}
	}

	return d
}

func pairCollections(a, b Collection, h equals.Handler) []*Difference {
	var ea, eb []Object
	if !compare.IsNil(a) {
		ea = a.Elements()
	}
	if !compare.IsNil(b) {
		eb = b.Elements()
	}

	ordered := (compare.IsNil(a) || a.Ordered()) && (compare.IsNil(b) || b.Ordered())
	if ordered {
		script := diff.Diff(ea, eb, SameKey)
		moved := moves(script)
		movedFrom := make(map[int]bool, len(moved))
		for _, i := range moved {
			movedFrom[i] = true
		}

		out := make([]*Difference, 0, len(script))
		for _, e := range script {
			switch e.Op {
			case diff.Keep:
				out = append(out, Compare(e.Source, e.Target, h))
			case diff.Insert:
				if i, ok := moved[e.TargetIndex]; ok {
					out = append(out, compareMoved(ea[i], e.Target, i, e.TargetIndex, h))
					continue
				}
				out = append(out, whole(e.Target, state.Added, h))
			case diff.Delete:
				if movedFrom[e.SourceIndex] {
					continue
				}
				out = append(out, whole(e.Source, state.Deleted, h))
			}
		}
		return out
	}

	pairs, deleted, added := compare.Match(ea, eb, SameKey)
	out := make([]*Difference, 0, len(pairs)+len(deleted)+len(added))
	for _, p := range pairs {
		out = append(out, Compare(ea[p[0]], eb[p[1]], h))
	}
	for _, i := range deleted {
		out = append(out, whole(ea[i], state.Deleted, h))
	}
	for _, j := range added {
		out = append(out, whole(eb[j], state.Added, h))
	}

	slices.SortStableFunc(out, func(x, y *Difference) int {
		return x.Key.Compare(y.Key)
	})
	return out
}

// moves pairs the deleted and inserted elements of script that share a key, i.e.
// elements that only changed position. The result maps target to source indexes.
func moves(script diff.Script[Object]) map[int]int {
	var deleted, inserted []diff.Edit[Object]
	for _, e := range script {
		switch e.Op {
		case diff.Delete:
			deleted = append(deleted, e)
		case diff.Insert:
			inserted = append(inserted, e)
		}
	}

	moved := make(map[int]int)
	for _, del := range deleted {
		for _, ins := range inserted {
			if _, taken := moved[ins.TargetIndex]; taken {
				continue
			}
			if SameKey(del.Source, ins.Target) {
				moved[ins.TargetIndex] = del.SourceIndex
				break
			}
		}
	}
	return moved
}

// compareMoved compares an element found at another position of the target list.
// The move is recorded as a change of the position property, 1-based, whatever
// the handler: element order is part of collection equality.
func compareMoved(a, b Object, from, to int, h equals.Handler) *Difference {
	d := Compare(a, b, h)
	d.Properties = append(d.Properties, PropertyChange{
		Name:   PositionProperty,
		State:  state.Modified,
		Source: from + 1,
		Target: to + 1,
	})
	d.State = state.Modified
	return d
}

// HasChanges reports whether the node or anything below it changed.
func (d *Difference) HasChanges() bool {
	return d != nil && d.State.IsChanged()
}

// Label describes the node, e.g. "column NAME".
func (d *Difference) Label() string {
	return d.Kind + " " + d.Key.String()
}

// Object returns the target object, or the source for deleted nodes.
func (d *Difference) Object() Object {
	if d.Target != nil {
		return d.Target
	}
	return d.Source
}

// Reverse returns the tree describing the change from target back to source.
func (d *Difference) Reverse() *Difference {
	if d == nil {
		return nil
	}

	r := &Difference{
		Kind:   d.Kind,
		Key:    d.Key,
		State:  d.State.Reverse(),
		Source: d.Target,
		Target: d.Source,
	}

	if d.State == state.Modified && d.Source != nil {
		r.Key = d.Source.Key()
	}

	for _, p := range d.Properties {
		r.Properties = append(r.Properties, PropertyChange{
			Name:   p.Name,
			State:  p.State.Reverse(),
			Source: p.Target,
			Target: p.Source,
		})
	}

	for _, c := range d.Children {
		r.Children = append(r.Children, c.Reverse())
	}

	return r
}

// Walk calls fn for every node of the tree in pre-order. depth is 0 for the root.
func (d *Difference) Walk(fn func(n *Difference, depth int) error) error {
	return d.walk(fn, 0)
}

func (d *Difference) walk(fn func(*Difference, int) error, depth int) error {
	if d == nil {
		return nil
	}

	if err := fn(d, depth); err != nil {
		return err
	}

	for _, c := range d.Children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Changes returns every changed node of the tree in pre-order, root excluded.
func (d *Difference) Changes() []*Difference {
	var out []*Difference
	_ = d.Walk(func(n *Difference, depth int) error {
		if depth > 0 && n.HasChanges() {
			out = append(out, n)
		}
		return nil
	})
	return out
}

// Stats counts the added, modified and deleted nodes below the root, and the
// changed properties of the whole tree.
func (d *Difference) Stats() DifferenceStats {
	var st DifferenceStats
	_ = d.Walk(func(n *Difference, depth int) error {
		st.Properties += len(n.Properties)
		if depth == 0 {
			return nil
		}

		switch n.State {
		case state.Added:
			st.Added++
		case state.Modified:
			st.Modified++
		case state.Deleted:
			st.Deleted++
		}
		return nil
	})
	return st
}
