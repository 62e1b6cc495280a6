package equals

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/compare"
	"gopkg.in/yaml.v3"
)

// PropertyMap is a name to value mapping that remembers insertion order.
type PropertyMap struct {
	keys   []string
	values map[string]any
}

func NewPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[string]any)}
}

// Set stores value under name. Replacing an existing name keeps its position.
func (m *PropertyMap) Set(name string, value any) {
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

func (m *PropertyMap) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *PropertyMap) Len() int {
	return len(m.keys)
}

// Keys returns the property names in insertion order.
func (m *PropertyMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every property in insertion order until fn returns false.
func (m *PropertyMap) Each(fn func(name string, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap returns the properties as a plain (unordered) map.
func (m *PropertyMap) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m *PropertyMap) Clone() *PropertyMap {
	out := NewPropertyMap()
	m.Each(func(name string, value any) bool {
		out.Set(name, value)
		return true
	})
	return out
}

// Equal reports whether both maps hold the same names in the same order with equal
// values.
func (m *PropertyMap) Equal(other *PropertyMap) bool {
	if m == nil || other == nil {
		return m == other
	}

	if len(m.keys) != len(other.keys) {
		return false
	}

	for i, k := range m.keys {
		if other.keys[i] != k || !compare.Values(m.values[k], other.values[k]) {
			return false
		}
	}

	return true
}

// MarshalYAML renders the map as a YAML mapping preserving insertion order.
func (m *PropertyMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range m.keys {
		var key, value yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, errors.Wrapf(err, "failed to encode property name: %s", k)
		}
		if err := value.Encode(m.values[k]); err != nil {
			return nil, errors.Wrapf(err, "failed to encode property: %s", k)
		}
		node.Content = append(node.Content, &key, &value)
	}

	return node, nil
}
