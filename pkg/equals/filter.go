package equals

import (
	"slices"
)

type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	set := make(nameSet, len(names))
	set.add(names...)
	return set
}

func (s nameSet) add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

func (s nameSet) remove(names ...string) {
	for _, name := range names {
		delete(s, name)
	}
}

func (s nameSet) clone() nameSet {
	out := make(nameSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

func (s nameSet) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// matches checks the bare property name and, when the owner exposes its kind, the
// kind qualified form (e.g. "column.comment").
func (s nameSet) matches(property string, owner any) bool {
	if _, ok := s[property]; ok {
		return true
	}

	if k, ok := owner.(interface{ Kind() string }); ok {
		_, found := s[k.Kind()+"."+property]
		return found
	}

	return false
}

// ExcludeHandler skips the named properties and delegates everything else.
type ExcludeHandler struct {
	Handler
	names nameSet
}

// NewExclude returns a handler that compares every property except names.
func NewExclude(names ...string) *ExcludeHandler {
	return &ExcludeHandler{Handler: NewBase(), names: newNameSet(names)}
}

// Add excludes additional properties. It returns the handler for chaining.
func (e *ExcludeHandler) Add(names ...string) *ExcludeHandler {
	e.names.add(names...)
	return e
}

// Remove stops excluding the given properties.
func (e *ExcludeHandler) Remove(names ...string) *ExcludeHandler {
	e.names.remove(names...)
	return e
}

// Names returns the excluded property names, sorted.
func (e *ExcludeHandler) Names() []string {
	return e.names.sorted()
}

func (e *ExcludeHandler) Skips(property string, owner any) bool {
	return e.names.matches(property, owner) || Skips(e.Handler, property, owner)
}

func (e *ExcludeHandler) ValueEquals(property string, owner1, owner2, value1, value2 any, compare Comparator) bool {
	if e.names.matches(property, owner1) {
		return true
	}

	return e.Handler.ValueEquals(property, owner1, owner2, value1, value2, compare)
}

func (e *ExcludeHandler) Clone() Handler {
	return &ExcludeHandler{Handler: e.Handler.Clone(), names: e.names.clone()}
}

// IncludeHandler compares only the named properties and skips everything else.
type IncludeHandler struct {
	Handler
	names nameSet
}

// NewInclude returns a handler that compares only names.
func NewInclude(names ...string) *IncludeHandler {
	return &IncludeHandler{Handler: NewBase(), names: newNameSet(names)}
}

// Add includes additional properties. It returns the handler for chaining.
func (i *IncludeHandler) Add(names ...string) *IncludeHandler {
	i.names.add(names...)
	return i
}

// Remove stops including the given properties.
func (i *IncludeHandler) Remove(names ...string) *IncludeHandler {
	i.names.remove(names...)
	return i
}

// Names returns the included property names, sorted.
func (i *IncludeHandler) Names() []string {
	return i.names.sorted()
}

func (i *IncludeHandler) Skips(property string, owner any) bool {
	return !i.names.matches(property, owner) || Skips(i.Handler, property, owner)
}

func (i *IncludeHandler) ValueEquals(property string, owner1, owner2, value1, value2 any, compare Comparator) bool {
	if !i.names.matches(property, owner1) {
		return true
	}

	return i.Handler.ValueEquals(property, owner1, owner2, value1, value2, compare)
}

func (i *IncludeHandler) Clone() Handler {
	return &IncludeHandler{Handler: i.Handler.Clone(), names: i.names.clone()}
}
