package equals

// Comparator lazily performs the structural comparison of a single property.
type Comparator func() bool

// Handler is a comparison strategy consulted while two objects are traversed.
type Handler interface {
	// ValueEquals is called once per property. Returning false vetoes equality,
	// returning true skips to the next property.
	ValueEquals(property string, owner1, owner2, value1, value2 any, compare Comparator) bool

	// ReferenceEquals is the fast path checked before any property is visited.
	// Returning true ends the comparison as equal.
	ReferenceEquals(object1, object2 any) bool

	// EqualsResult is called once per object pair with the aggregated result of
	// the property checks and returns the final answer.
	EqualsResult(object1, object2 any, result bool) bool

	// Clone returns an independent copy of the handler.
	Clone() Handler
}

// Skipper is implemented by handlers that ignore some properties. Callers building
// difference reports use it to leave ignored properties out.
type Skipper interface {
	Skips(property string, owner any) bool
}

// Skips reports whether h ignores property on owner.
func Skips(h Handler, property string, owner any) bool {
	if s, ok := h.(Skipper); ok {
		return s.Skips(property, owner)
	}

	return false
}

// BaseHandler compares every property.
type BaseHandler struct{}

// NewBase returns a handler comparing every property.
func NewBase() BaseHandler {
	return BaseHandler{}
}

func (BaseHandler) ValueEquals(_ string, _, _, _, _ any, compare Comparator) bool {
	return compare()
}

func (BaseHandler) ReferenceEquals(object1, object2 any) bool {
	return object1 == object2
}

func (BaseHandler) EqualsResult(_, _ any, result bool) bool {
	return result
}

func (BaseHandler) Clone() Handler {
	return BaseHandler{}
}

var defaultHandler = NewExclude()

// Default returns a private copy of the shared default handler. The copy excludes
// nothing until names are added to it.
func Default() *ExcludeHandler {
	return defaultHandler.Clone().(*ExcludeHandler)
}
