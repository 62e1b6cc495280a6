package equals

// PropertyExtractor collects the properties of a single target object while it is
// traversed. It is not a predicate: every comparison it takes part in reports
// unequal.
type PropertyExtractor struct {
	target any
	values *PropertyMap
}

// NewPropertyExtractor returns an extractor recording the properties of target.
func NewPropertyExtractor(target any) *PropertyExtractor {
	return &PropertyExtractor{target: target, values: NewPropertyMap()}
}

// Values returns the properties recorded so far, in visiting order.
func (p *PropertyExtractor) Values() *PropertyMap {
	return p.values
}

func (p *PropertyExtractor) ValueEquals(property string, owner1, _, value1, _ any, _ Comparator) bool {
	if owner1 == p.target {
		p.values.Set(property, value1)
	}

	return true
}

func (p *PropertyExtractor) ReferenceEquals(_, _ any) bool {
	return false
}

func (p *PropertyExtractor) EqualsResult(_, _ any, _ bool) bool {
	return false
}

func (p *PropertyExtractor) Clone() Handler {
	return &PropertyExtractor{target: p.target, values: p.values.Clone()}
}
