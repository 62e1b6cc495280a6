package object

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/compare"
	"github.com/pseudomuto/schemata/pkg/diff"
	"github.com/pseudomuto/schemata/pkg/equals"
)

// ErrDuplicateName is returned when adding an element whose key is already taken
// in a name-indexed list.
var ErrDuplicateName = errors.New("duplicate name")

type (
	// Collection is the element-type independent view of a List, used when
	// traversing properties.
	Collection interface {
		// ElementKind returns the kind of the elements.
		ElementKind() string

		// Ordered reports whether element order is significant.
		Ordered() bool

		// Owner returns the object owning the collection.
		Owner() Object

		Len() int
		Elements() []Object
	}

	// NewElement is implemented by collections that construct their own elements.
	NewElement[T Object] interface {
		// NewElement creates an element owned by the collection and appends it. The
		// element has no name yet, so a name-indexed collection refuses a second one
		// until the first is named.
		NewElement() (T, error)

		// Add creates an element, passes it to configure and appends it. Nothing is
		// appended when configure fails or the configured key is already taken.
		Add(configure func(T) error) (T, error)
	}

	// ListOption configures a List.
	ListOption func(*listOptions)

	listOptions struct {
		named     bool
		unordered bool
	}
)

// Unordered marks a list whose element order carries no meaning.
func Unordered() ListOption {
	return func(o *listOptions) { o.unordered = true }
}

// List is an owned sequence of sibling objects of a single kind.
type List[T Object] struct {
	owner    Object
	kind     string
	factory  func() T
	opts     listOptions
	elements []T
}

// NewList returns a plain sequence owned by owner. factory constructs elements already
// wired to owner.
func NewList[T Object](owner Object, kind string, factory func() T, opts ...ListOption) *List[T] {
	l := &List[T]{owner: owner, kind: kind, factory: factory}
	for _, opt := range opts {
		opt(&l.opts)
	}
	return l
}

// NewNamedList returns a list that enforces unique keys among its elements.
func NewNamedList[T Object](owner Object, kind string, factory func() T, opts ...ListOption) *List[T] {
	l := NewList(owner, kind, factory, opts...)
	l.opts.named = true
	return l
}

func (l *List[T]) ElementKind() string { return l.kind }
func (l *List[T]) Ordered() bool       { return !l.opts.unordered }
func (l *List[T]) Named() bool         { return l.opts.named }
func (l *List[T]) Owner() Object       { return l.owner }
func (l *List[T]) Len() int            { return len(l.elements) }

// At returns the element at index i.
func (l *List[T]) At(i int) T {
	return l.elements[i]
}

// All returns a copy of the elements.
func (l *List[T]) All() []T {
	return slices.Clone(l.elements)
}

func (l *List[T]) Elements() []Object {
	out := make([]Object, len(l.elements))
	for i, e := range l.elements {
		out[i] = e
	}
	return out
}

// Names returns the key of every element, in list order.
func (l *List[T]) Names() []string {
	out := make([]string, len(l.elements))
	for i, e := range l.elements {
		out[i] = e.Key().String()
	}
	return out
}

// Get returns the first element named name.
func (l *List[T]) Get(name string) (T, bool) {
	return l.GetKey(Key{Name: name})
}

// GetKey returns the element with the given key.
func (l *List[T]) GetKey(key Key) (T, bool) {
	for _, e := range l.elements {
		if e.Key() == key {
			return e, true
		}
	}

	var zero T
	return zero, false
}

func (l *List[T]) NewElement() (T, error) {
	e := l.factory()
	if err := l.Append(e); err != nil {
		var zero T
		return zero, err
	}
	return e, nil
}

func (l *List[T]) Add(configure func(T) error) (T, error) {
	var zero T

	e := l.factory()
	if configure != nil {
		if err := configure(e); err != nil {
			return zero, errors.Wrapf(err, "failed to configure %s", l.kind)
		}
	}

	if err := l.Append(e); err != nil {
		return zero, err
	}

	return e, nil
}

// Append registers an element that is already wired to the list owner.
func (l *List[T]) Append(e T) error {
	if l.opts.named {
		if _, exists := l.GetKey(e.Key()); exists {
			return errors.Wrapf(ErrDuplicateName, "%s %s", l.kind, e.Key())
		}
	}

	l.elements = append(l.elements, e)
	return nil
}

// Remove deletes the element with the given key. It reports whether an element
// was removed.
func (l *List[T]) Remove(key Key) bool {
	for i, e := range l.elements {
		if e.Key() == key {
			l.elements = slices.Delete(l.elements, i, i+1)
			return true
		}
	}
	return false
}

// Find returns the element matching e: the element with the same key, or failing
// that the first element whose properties match e under h.
func (l *List[T]) Find(e T, h equals.Handler) (T, bool) {
	if found, ok := l.GetKey(e.Key()); ok {
		return found, true
	}

	for _, candidate := range l.elements {
		if PropertiesMatch(candidate, e, h) {
			return candidate, true
		}
	}

	var zero T
	return zero, false
}

// Diff returns the edit script turning l into other, matching elements that are
// like each other under h.
func (l *List[T]) Diff(other *List[T], h equals.Handler) diff.Script[T] {
	h = handlerOrDefault(h)
	return diff.Diff(l.elements, other.elements, func(a, b T) bool {
		return Like(a, b, h)
	})
}

// Sort orders the elements by key.
func (l *List[T]) Sort() {
	l.SortFunc(func(a, b T) int {
		return a.Key().Compare(b.Key())
	})
}

// SortFunc orders the elements with cmp. The sort is stable.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(l.elements, cmp)
}

// MarshalYAML renders the list as the sequence of element keys.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.Names(), nil
}

func collectionsLike(a, b Collection, h equals.Handler) bool {
	if compare.IsNil(a) || compare.IsNil(b) {
		return compare.IsNil(a) && compare.IsNil(b)
	}

	like := func(x, y Object) bool { return Like(x, y, h) }
	if a.Ordered() && b.Ordered() {
		return compare.Slices(a.Elements(), b.Elements(), like)
	}

	return compare.SlicesUnordered(a.Elements(), b.Elements(), like)
}
