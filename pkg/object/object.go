package object

import (
	"cmp"
	"strings"

	"github.com/pseudomuto/schemata/pkg/equals"
)

type (
	// Key identifies an object among its siblings. Most objects are identified by
	// Name alone; overloadable ones (routines) also use SpecificName and Schema.
	Key struct {
		Name         string
		SpecificName string
		Schema       string
	}

	// Property is a single named attribute of an object.
	Property struct {
		Name  string
		Value any
	}

	// Object is implemented by every schema object.
	Object interface {
		// Kind returns the object type, e.g. "table". Objects of different kinds
		// are never equal.
		Kind() string

		// Key returns the identity of the object among its siblings.
		Key() Key

		// Properties returns the comparable attributes in a fixed order. Objects of
		// the same kind always return the same property names in the same order.
		Properties() []Property
	}

	// Node is the full capability set of a schema object.
	Node interface {
		Object
		Like(other Object) bool
		LikeWith(other Object, h equals.Handler) bool
		Diff(other Object) *Difference
		DiffWith(other Object, h equals.Handler) *Difference
		ToMap() *equals.PropertyMap
		ApplyAll(fn Visitor) error
	}

	// HasParent is implemented by objects holding a reference to their owner.
	HasParent[P Object] interface {
		Parent() P
	}

	// Visitor is called for every object visited by ApplyAll.
	Visitor func(Object) error
)

// String renders the key as [schema.]name[(specific)].
func (k Key) String() string {
	var sb strings.Builder
	if k.Schema != "" {
		sb.WriteString(k.Schema)
		sb.WriteByte('.')
	}

	sb.WriteString(k.Name)
	if k.SpecificName != "" && k.SpecificName != k.Name {
		sb.WriteByte('(')
		sb.WriteString(k.SpecificName)
		sb.WriteByte(')')
	}

	return sb.String()
}

func (k Key) IsZero() bool {
	return k == Key{}
}

// Compare orders keys by schema, name and specific name.
func (k Key) Compare(other Key) int {
	return cmp.Or(
		cmp.Compare(k.Schema, other.Schema),
		cmp.Compare(k.Name, other.Name),
		cmp.Compare(k.SpecificName, other.SpecificName),
	)
}

// Named is embedded by objects identified by a plain name.
type Named struct {
	Name string
}

func (n *Named) Key() Key {
	return Key{Name: n.Name}
}

func (n *Named) GetName() string {
	return n.Name
}

func (n *Named) SetName(name string) {
	n.Name = name
}

// SameKey reports whether a and b are of the same kind and share a Key.
func SameKey(a, b Object) bool {
	return a.Kind() == b.Kind() && a.Key() == b.Key()
}
