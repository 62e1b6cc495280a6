package catalog

import (
	"github.com/pseudomuto/schemata/pkg/object"
)

type (
	Sequence struct {
		object.Named
		schema    *Schema
		DataType  string
		Start     *int64
		Increment *int64
		MinValue  *int64
		MaxValue  *int64
		Cache     *int64
		Cycle     bool
	}

	View struct {
		object.Named
		schema       *Schema
		Definition   string
		Materialized bool
		Comment      string
		Columns      *object.List[*Column]
	}

	// Routine is a function or procedure. Routines may be overloaded, so they are
	// identified by name, specific name and schema.
	Routine struct {
		object.Named
		schema        *Schema
		SpecificName  string
		Type          RoutineType
		ReturnType    string
		Language      string
		Deterministic bool
		Body          string
		Parameters    *object.List[*Parameter]
	}

	// Parameter is a routine argument. Parameters are positional and may be
	// unnamed.
	Parameter struct {
		object.Named
		routine      *Routine
		DataType     string
		Mode         ParameterMode
		DefaultValue *string
	}

	// UserType is a user defined type: an enum, a domain over a base type or a
	// composite.
	UserType struct {
		object.Named
		schema   *Schema
		Category TypeCategory
		BaseType string
		Values   []string
	}
)

func (s *Sequence) Kind() string    { return KindSequence }
func (s *Sequence) Parent() *Schema { return s.schema }

func (s *Sequence) Properties() []object.Property {
	return []object.Property{
		{Name: "dataType", Value: s.DataType},
		{Name: "start", Value: s.Start},
		{Name: "increment", Value: s.Increment},
		{Name: "minValue", Value: s.MinValue},
		{Name: "maxValue", Value: s.MaxValue},
		{Name: "cache", Value: s.Cache},
		{Name: "cycle", Value: s.Cycle},
	}
}

func newView(s *Schema) *View {
	v := &View{schema: s}
	v.Columns = newColumns(v)
	return v
}

func (v *View) Kind() string                      { return KindView }
func (v *View) Parent() *Schema                   { return v.schema }
func (v *View) ColumnList() *object.List[*Column] { return v.Columns }

func (v *View) Properties() []object.Property {
	return []object.Property{
		{Name: "definition", Value: v.Definition},
		{Name: "materialized", Value: v.Materialized},
		{Name: "comment", Value: v.Comment},
		{Name: "columns", Value: v.Columns},
	}
}

func newRoutine(s *Schema) *Routine {
	r := &Routine{schema: s}
	r.Parameters = object.NewList(r, KindParameter, func() *Parameter { return &Parameter{routine: r} })
	return r
}

func (r *Routine) Kind() string    { return KindRoutine }
func (r *Routine) Parent() *Schema { return r.schema }

func (r *Routine) Key() object.Key {
	key := object.Key{Name: r.Name, SpecificName: r.SpecificName}
	if r.schema != nil {
		key.Schema = r.schema.Name
	}
	return key
}

func (r *Routine) Properties() []object.Property {
	return []object.Property{
		{Name: "routineType", Value: r.Type},
		{Name: "returnType", Value: r.ReturnType},
		{Name: "language", Value: r.Language},
		{Name: "deterministic", Value: r.Deterministic},
		{Name: "body", Value: r.Body},
		{Name: "parameters", Value: r.Parameters},
	}
}

func (p *Parameter) Kind() string     { return KindParameter }
func (p *Parameter) Parent() *Routine { return p.routine }

func (p *Parameter) Properties() []object.Property {
	return []object.Property{
		{Name: "dataType", Value: p.DataType},
		{Name: "mode", Value: p.Mode},
		{Name: "defaultValue", Value: p.DefaultValue},
	}
}

func (u *UserType) Kind() string    { return KindType }
func (u *UserType) Parent() *Schema { return u.schema }

func (u *UserType) Properties() []object.Property {
	return []object.Property{
		{Name: "category", Value: u.Category},
		{Name: "baseType", Value: u.BaseType},
		{Name: "values", Value: u.Values},
	}
}
