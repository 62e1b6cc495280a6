package object_test

import (
	"errors"
	"testing"

	"github.com/pseudomuto/schemata/pkg/equals"
	. "github.com/pseudomuto/schemata/pkg/object"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{name: "plain", key: Key{Name: "EMP"}, expected: "EMP"},
		{name: "schema qualified", key: Key{Name: "raise", Schema: "hr"}, expected: "hr.raise"},
		{name: "specific name", key: Key{Name: "raise", SpecificName: "raise_1", Schema: "hr"}, expected: "hr.raise(raise_1)"},
		{name: "specific name equal to name", key: Key{Name: "raise", SpecificName: "raise"}, expected: "raise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.key.String())
		})
	}

	require.True(t, Key{}.IsZero())
	require.False(t, Key{Name: "a"}.IsZero())
	require.Negative(t, Key{Name: "a"}.Compare(Key{Name: "b"}))
	require.Positive(t, Key{Name: "a", Schema: "z"}.Compare(Key{Name: "b", Schema: "a"}))
	require.Zero(t, Key{Name: "a", SpecificName: "x"}.Compare(Key{Name: "a", SpecificName: "x"}))
}

func TestNamed(t *testing.T) {
	c := newTable("EMP", "ID").column("ID")
	require.Equal(t, "ID", c.GetName())

	c.SetName("EMP_ID")
	require.Equal(t, Key{Name: "EMP_ID"}, c.Key())
}

func TestLike(t *testing.T) {
	t.Run("reflexive", func(t *testing.T) {
		emp := newTable("EMP", "ID", "NAME")
		require.True(t, Like(emp, emp, nil))
		require.True(t, Like(emp, emp, equals.NewInclude("comment")))
		require.True(t, Like(emp.column("ID"), emp.column("ID"), equals.NewExclude()))
	})

	t.Run("nil", func(t *testing.T) {
		require.True(t, Like(nil, nil, nil))
		require.False(t, Like(newTable("EMP"), nil, nil))
		require.False(t, Like(nil, newTable("EMP"), nil))
	})

	t.Run("different kinds", func(t *testing.T) {
		emp := newTable("ID", "ID")
		require.False(t, Like(emp, emp.column("ID"), nil))
	})

	t.Run("different keys", func(t *testing.T) {
		require.False(t, Like(newTable("EMP"), newTable("DEPT"), nil))
	})

	t.Run("composite keys", func(t *testing.T) {
		a := &routine{Named: Named{Name: "raise"}, SpecificName: "raise_1", Schema: "hr"}
		b := &routine{Named: Named{Name: "raise"}, SpecificName: "raise_2", Schema: "hr"}
		require.False(t, Like(a, b, nil))

		b.SpecificName = "raise_1"
		require.True(t, Like(a, b, nil))
	})

	t.Run("columns differ", func(t *testing.T) {
		src := newTable("EMP", "ID", "NAME")
		dst := newTable("EMP", "ID", "NAME", "SALARY")

		require.False(t, Like(src, dst, equals.Default()))
		require.True(t, Like(src, dst, equals.NewExclude("columns")))
	})

	t.Run("column order matters", func(t *testing.T) {
		require.False(t, Like(newTable("EMP", "ID", "NAME"), newTable("EMP", "NAME", "ID"), nil))
	})

	t.Run("index order does not matter", func(t *testing.T) {
		src, dst := newTable("EMP"), newTable("EMP")
		src.addIndex("a", "ID")
		src.addIndex("b", "NAME")
		dst.addIndex("b", "NAME")
		dst.addIndex("a", "ID")

		require.True(t, Like(src, dst, nil))
	})

	t.Run("excluded property", func(t *testing.T) {
		src, dst := newTable("EMP", "ID"), newTable("EMP", "ID")
		dst.column("ID").DataType = "bigint"
		dst.Comment = "employees"

		require.False(t, Like(src, dst, nil))
		require.False(t, Like(src, dst, equals.NewExclude("comment")))
		require.True(t, Like(src, dst, equals.NewExclude("comment", "dataType")))
		require.True(t, Like(src, dst, equals.NewExclude("table.comment", "column.dataType")))
	})

	t.Run("included property", func(t *testing.T) {
		src, dst := newTable("EMP", "ID"), newTable("EMP", "ID")
		dst.column("ID").Nullable = true

		require.True(t, Like(src, dst, equals.NewInclude("columns", "dataType")))
		require.False(t, Like(src, dst, equals.NewInclude("columns", "nullable")))
		require.True(t, Like(src, dst, equals.NewInclude("nullable")), "columns are never visited")
	})
}

func TestPropertiesMatch(t *testing.T) {
	src, dst := newTable("EMP", "ID"), newTable("PERSON", "ID")
	require.True(t, PropertiesMatch(src, dst, nil))
	require.False(t, Like(src, dst, nil))

	dst.Comment = "people"
	require.False(t, PropertiesMatch(src, dst, nil))
	require.False(t, PropertiesMatch(src, src.column("ID"), nil))
}

func TestToMap(t *testing.T) {
	emp := newTable("EMP", "ID")
	c := emp.column("ID")
	c.Nullable = true

	m := ToMap(c)
	require.Equal(t, []string{"dataType", "nullable"}, m.Keys())
	require.Equal(t, map[string]any{"dataType": "integer", "nullable": true}, m.ToMap())
	require.True(t, m.Equal(ToMap(c)))

	tm := ToMap(emp)
	require.Equal(t, []string{"comment", "columns", "indexes"}, tm.Keys())

	cols, ok := tm.Get("columns")
	require.True(t, ok)
	require.IsType(t, (*List[*column])(nil), cols)
	require.Same(t, emp.column("ID"), cols.(Collection).Elements()[0])
	require.True(t, tm.Equal(ToMap(emp)))
}

func TestApplyAll(t *testing.T) {
	emp := newTable("EMP", "ID", "NAME")
	emp.addIndex("emp_name", "NAME")

	var visited []string
	err := ApplyAll(emp, func(o Object) error {
		visited = append(visited, o.Kind()+":"+o.Key().String())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"table:EMP", "column:ID", "column:NAME", "index:emp_name"}, visited)

	stop := errors.New("stop")
	visited = nil
	err = ApplyAll(emp, func(o Object) error {
		visited = append(visited, o.Key().String())
		if o.Key().Name == "ID" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"EMP", "ID"}, visited)
}
