package object_test

import (
	"github.com/pseudomuto/schemata/pkg/object"
)

type (
	table struct {
		object.Named
		Comment string
		columns *object.List[*column]
		indexes *object.List[*index]
	}

	column struct {
		object.Named
		table    *table
		DataType string
		Nullable bool
	}

	index struct {
		object.Named
		table   *table
		Unique  bool
		Columns []string
	}

	routine struct {
		object.Named
		SpecificName string
		Schema       string
		Body         string
	}
)

func newTable(name string, columns ...string) *table {
	t := &table{Named: object.Named{Name: name}}
	t.columns = object.NewNamedList(t, "column", func() *column { return &column{table: t, DataType: "integer"} })
	t.indexes = object.NewNamedList(t, "index", func() *index { return &index{table: t} }, object.Unordered())

	for _, col := range columns {
		c, err := t.columns.NewElement()
		if err != nil {
			panic(err)
		}
		c.Name = col
	}
	return t
}

func (t *table) Kind() string { return "table" }

func (t *table) Properties() []object.Property {
	return []object.Property{
		{Name: "comment", Value: t.Comment},
		{Name: "columns", Value: t.columns},
		{Name: "indexes", Value: t.indexes},
	}
}

func (t *table) column(name string) *column {
	c, _ := t.columns.Get(name)
	return c
}

func (t *table) addIndex(name string, columns ...string) *index {
	idx, err := t.indexes.Add(func(i *index) error {
		i.Name = name
		i.Columns = columns
		return nil
	})
	if err != nil {
		panic(err)
	}
	return idx
}

func (c *column) Kind() string   { return "column" }
func (c *column) Parent() *table { return c.table }

func (c *column) Properties() []object.Property {
	return []object.Property{
		{Name: "dataType", Value: c.DataType},
		{Name: "nullable", Value: c.Nullable},
	}
}

func (i *index) Kind() string { return "index" }

func (i *index) Properties() []object.Property {
	return []object.Property{
		{Name: "unique", Value: i.Unique},
		{Name: "columns", Value: i.Columns},
	}
}

func (r *routine) Kind() string { return "routine" }

func (r *routine) Key() object.Key {
	return object.Key{Name: r.Name, SpecificName: r.SpecificName, Schema: r.Schema}
}

func (r *routine) Properties() []object.Property {
	return []object.Property{{Name: "body", Value: r.Body}}
}

var (
	_ object.Object              = (*table)(nil)
	_ object.HasParent[*table]   = (*column)(nil)
	_ object.NewElement[*column] = (*object.List[*column])(nil)
)
