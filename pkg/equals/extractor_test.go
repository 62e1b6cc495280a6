package equals_test

import (
	"testing"

	. "github.com/pseudomuto/schemata/pkg/equals"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPropertyExtractor(t *testing.T) {
	target := &owner{kind: "column"}
	other := &owner{kind: "column"}

	h := NewPropertyExtractor(target)

	require.False(t, h.ReferenceEquals(target, target), "extraction must visit every property")
	require.True(t, h.ValueEquals("dataType", target, target, "int", "int", never))
	require.True(t, h.ValueEquals("nullable", target, target, false, false, never))
	require.True(t, h.ValueEquals("comment", other, other, "ignored", "ignored", never))
	require.False(t, h.EqualsResult(target, target, true))

	values := h.Values()
	require.Equal(t, []string{"dataType", "nullable"}, values.Keys())

	v, ok := values.Get("dataType")
	require.True(t, ok)
	require.Equal(t, "int", v)

	_, ok = values.Get("comment")
	require.False(t, ok)
}

func TestPropertyExtractor_Clone(t *testing.T) {
	target := &owner{}
	h := NewPropertyExtractor(target)
	h.ValueEquals("a", target, target, 1, 1, never)

	clone := h.Clone().(*PropertyExtractor)
	clone.ValueEquals("b", target, target, 2, 2, never)

	require.Equal(t, 1, h.Values().Len())
	require.Equal(t, 2, clone.Values().Len())
}

func TestPropertyMap(t *testing.T) {
	m := NewPropertyMap()
	m.Set("b", 1)
	m.Set("a", "x")
	m.Set("b", 2)

	require.Equal(t, []string{"b", "a"}, m.Keys())
	require.Equal(t, map[string]any{"a": "x", "b": 2}, m.ToMap())

	clone := m.Clone()
	require.True(t, m.Equal(clone))

	clone.Set("c", nil)
	require.False(t, m.Equal(clone))

	reordered := NewPropertyMap()
	reordered.Set("a", "x")
	reordered.Set("b", 2)
	require.False(t, m.Equal(reordered))

	var visited []string
	m.Each(func(name string, _ any) bool {
		visited = append(visited, name)
		return false
	})
	require.Equal(t, []string{"b"}, visited)
}

func TestPropertyMap_MarshalYAML(t *testing.T) {
	m := NewPropertyMap()
	m.Set("dataType", "varchar")
	m.Set("length", 255)
	m.Set("nullable", true)

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "dataType: varchar\nlength: 255\nnullable: true\n", string(out))
}
