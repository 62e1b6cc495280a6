package catalog

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/object"
)

// ErrNotFound is returned when a path names no object.
var ErrNotFound = errors.New("object not found")

// Lookup resolves a dotted path such as "hr", "hr.emp" or "hr.emp.id" to an
// object. Within a schema, tables take precedence over views, sequences, routines
// and types of the same name. Within a table, columns take precedence over
// constraints, indexes and triggers.
func (c *Catalog) Lookup(path string) (object.Node, error) {
	parts := strings.Split(path, ".")

	s, ok := c.Schema(parts[0])
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "schema %s", parts[0])
	}

	var node object.Node = s
	for _, name := range parts[1:] {
		next := child(node, name)
		if next == nil {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		node = next
	}

	return node, nil
}

func child(parent object.Node, name string) object.Node {
	switch p := parent.(type) {
	case *Schema:
		return first(name, p.Tables, p.Views, p.Sequences, p.Routines, p.Types)
	case *Table:
		return first(name, p.Columns, p.Constraints, p.Indexes, p.Triggers)
	case *View:
		return first(name, p.Columns)
	case *Routine:
		return first(name, p.Parameters)
	default:
		return nil
	}
}

type namedLookup interface {
	Elements() []object.Object
}

func first(name string, lists ...namedLookup) object.Node {
	for _, l := range lists {
		for _, e := range l.Elements() {
			if e.Key().Name == name {
				return e.(object.Node)
			}
		}
	}
	return nil
}

// Paths returns the dotted path of every schema, schema member and table, view or
// routine member, in catalog order.
func (c *Catalog) Paths() []string {
	var paths []string
	for _, s := range c.Schemas.All() {
		paths = append(paths, s.Name)
		for _, member := range s.members() {
			prefix := s.Name + "." + member.Key().Name
			paths = append(paths, prefix)

			if n, ok := member.(object.Node); ok {
				for _, e := range members(n) {
					paths = append(paths, prefix+"."+e.Key().Name)
				}
			}
		}
	}
	return paths
}

func (s *Schema) members() []object.Object {
	var out []object.Object
	for _, l := range []namedLookup{s.Tables, s.Views, s.Sequences, s.Routines, s.Types} {
		out = append(out, l.Elements()...)
	}
	return out
}

func members(n object.Node) []object.Object {
	var lists []namedLookup
	switch p := n.(type) {
	case *Table:
		lists = []namedLookup{p.Columns, p.Constraints, p.Indexes, p.Triggers}
	case *View:
		lists = []namedLookup{p.Columns}
	case *Routine:
		lists = []namedLookup{p.Parameters}
	}

	var out []object.Object
	for _, l := range lists {
		for _, e := range l.Elements() {
			if e.Key().Name != "" {
				out = append(out, e)
			}
		}
	}
	return out
}
