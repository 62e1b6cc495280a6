package catalog

import (
	"github.com/pseudomuto/schemata/pkg/object"
)

type (
	// Catalog is the root of a schema graph, typically one database.
	Catalog struct {
		object.Named
		Comment string
		Schemas *object.List[*Schema]
	}

	// Schema is a namespace of tables, views, sequences, routines and types.
	Schema struct {
		object.Named
		catalog   *Catalog
		Owner     string
		Comment   string
		Types     *object.List[*UserType]
		Sequences *object.List[*Sequence]
		Tables    *object.List[*Table]
		Views     *object.List[*View]
		Routines  *object.List[*Routine]
	}
)

// New returns an empty catalog.
func New(name string) *Catalog {
	c := &Catalog{Named: object.Named{Name: name}}
	c.Schemas = object.NewNamedList(c, KindSchema, func() *Schema { return newSchema(c) }, object.Unordered())
	return c
}

func (c *Catalog) Kind() string { return KindCatalog }

func (c *Catalog) Properties() []object.Property {
	return []object.Property{
		{Name: "comment", Value: c.Comment},
		{Name: "schemas", Value: c.Schemas},
	}
}

// Schema returns the schema named name.
func (c *Catalog) Schema(name string) (*Schema, bool) {
	return c.Schemas.Get(name)
}

// EnsureSchema returns the schema named name, creating it when missing.
func (c *Catalog) EnsureSchema(name string) *Schema {
	if s, ok := c.Schemas.Get(name); ok {
		return s
	}

	// name is free, so the add cannot fail.
	s, _ := c.Schemas.Add(func(s *Schema) error {
		s.Name = name
		return nil
	})
	return s
}

func newSchema(c *Catalog) *Schema {
	s := &Schema{catalog: c}
	s.Types = object.NewNamedList(s, KindType, func() *UserType { return &UserType{schema: s} }, object.Unordered())
	s.Sequences = object.NewNamedList(s, KindSequence, func() *Sequence { return &Sequence{schema: s} }, object.Unordered())
	s.Tables = object.NewNamedList(s, KindTable, func() *Table { return newTable(s) }, object.Unordered())
	s.Views = object.NewNamedList(s, KindView, func() *View { return newView(s) }, object.Unordered())
	s.Routines = object.NewNamedList(s, KindRoutine, func() *Routine { return newRoutine(s) }, object.Unordered())
	return s
}

func (s *Schema) Kind() string     { return KindSchema }
func (s *Schema) Parent() *Catalog { return s.catalog }

func (s *Schema) Properties() []object.Property {
	return []object.Property{
		{Name: "owner", Value: s.Owner},
		{Name: "comment", Value: s.Comment},
		{Name: "types", Value: s.Types},
		{Name: "sequences", Value: s.Sequences},
		{Name: "tables", Value: s.Tables},
		{Name: "views", Value: s.Views},
		{Name: "routines", Value: s.Routines},
	}
}

func (s *Schema) Table(name string) (*Table, bool) {
	return s.Tables.Get(name)
}

func (s *Schema) View(name string) (*View, bool) {
	return s.Views.Get(name)
}

// EnsureTable returns the table named name, creating it when missing.
func (s *Schema) EnsureTable(name string) *Table {
	if t, ok := s.Tables.Get(name); ok {
		return t
	}

	t, _ := s.Tables.Add(func(t *Table) error {
		t.Name = name
		return nil
	})
	return t
}

// Relation returns the table or view named name.
func (s *Schema) Relation(name string) (Relation, bool) {
	if t, ok := s.Tables.Get(name); ok {
		return t, true
	}
	if v, ok := s.Views.Get(name); ok {
		return v, true
	}
	return nil, false
}
