package catalog

import (
	"github.com/pseudomuto/schemata/pkg/object"
)

type (
	// Relation is a table or view: anything owning columns.
	Relation interface {
		object.Node
		Parent() *Schema
		ColumnList() *object.List[*Column]
	}

	Table struct {
		object.Named
		schema      *Schema
		Comment     string
		Engine      string
		Columns     *object.List[*Column]
		Constraints *object.List[*Constraint]
		Indexes     *object.List[*Index]
		Triggers    *object.List[*Trigger]
		Privileges  *object.List[*Privilege]
	}

	// Column belongs to a table or a view. Optional attributes are nil when the
	// source does not report them.
	Column struct {
		object.Named
		relation      Relation
		DataType      string
		Length        *int64
		Precision     *int64
		Scale         *int64
		Nullable      bool
		DefaultValue  *string
		AutoIncrement bool
		Comment       string
	}

	Constraint struct {
		object.Named
		table             *Table
		Type              ConstraintType
		Columns           []string
		ReferencedSchema  string
		ReferencedTable   string
		ReferencedColumns []string
		OnDelete          ReferentialAction
		OnUpdate          ReferentialAction
		CheckExpression   string
		Deferrable        bool
	}

	Index struct {
		object.Named
		table   *Table
		Unique  bool
		Method  string
		Columns []string
		Where   string
	}

	Trigger struct {
		object.Named
		table       *Table
		Timing      TriggerTiming
		Events      []TriggerEvent
		Orientation TriggerOrientation
		When        string
		Action      string
	}

	// Privilege is a grant on a table. It is identified by grantee and privilege
	// type, so the same grantee holds one Privilege per type.
	Privilege struct {
		table     *Table
		Grantee   string
		Type      PrivilegeType
		Grantor   string
		Grantable bool
	}
)

func newTable(s *Schema) *Table {
	t := &Table{schema: s}
	t.Columns = newColumns(t)
	t.Constraints = object.NewNamedList(t, KindConstraint, func() *Constraint { return &Constraint{table: t} }, object.Unordered())
	t.Indexes = object.NewNamedList(t, KindIndex, func() *Index { return &Index{table: t} }, object.Unordered())
	t.Triggers = object.NewNamedList(t, KindTrigger, func() *Trigger { return &Trigger{table: t} }, object.Unordered())
	t.Privileges = object.NewNamedList(t, KindPrivilege, func() *Privilege { return &Privilege{table: t} }, object.Unordered())
	return t
}

func newColumns(r Relation) *object.List[*Column] {
	return object.NewNamedList(r, KindColumn, func() *Column { return &Column{relation: r} })
}

func (t *Table) Kind() string                      { return KindTable }
func (t *Table) Parent() *Schema                   { return t.schema }
func (t *Table) ColumnList() *object.List[*Column] { return t.Columns }

func (t *Table) Properties() []object.Property {
	return []object.Property{
		{Name: "comment", Value: t.Comment},
		{Name: "engine", Value: t.Engine},
		{Name: "columns", Value: t.Columns},
		{Name: "constraints", Value: t.Constraints},
		{Name: "indexes", Value: t.Indexes},
		{Name: "triggers", Value: t.Triggers},
		{Name: "privileges", Value: t.Privileges},
	}
}

func (t *Table) Column(name string) (*Column, bool) {
	return t.Columns.Get(name)
}

// PrimaryKey returns the primary key constraint, if any.
func (t *Table) PrimaryKey() (*Constraint, bool) {
	for _, c := range t.Constraints.All() {
		if c.Type == PrimaryKey {
			return c, true
		}
	}
	return nil, false
}

func (c *Column) Kind() string     { return KindColumn }
func (c *Column) Parent() Relation { return c.relation }

func (c *Column) Properties() []object.Property {
	return []object.Property{
		{Name: "dataType", Value: c.DataType},
		{Name: "length", Value: c.Length},
		{Name: "precision", Value: c.Precision},
		{Name: "scale", Value: c.Scale},
		{Name: "nullable", Value: c.Nullable},
		{Name: "defaultValue", Value: c.DefaultValue},
		{Name: "autoIncrement", Value: c.AutoIncrement},
		{Name: "comment", Value: c.Comment},
	}
}

func (c *Constraint) Kind() string   { return KindConstraint }
func (c *Constraint) Parent() *Table { return c.table }

func (c *Constraint) Properties() []object.Property {
	return []object.Property{
		{Name: "constraintType", Value: c.Type},
		{Name: "columns", Value: c.Columns},
		{Name: "referencedSchema", Value: c.ReferencedSchema},
		{Name: "referencedTable", Value: c.ReferencedTable},
		{Name: "referencedColumns", Value: c.ReferencedColumns},
		{Name: "onDelete", Value: c.OnDelete},
		{Name: "onUpdate", Value: c.OnUpdate},
		{Name: "checkExpression", Value: c.CheckExpression},
		{Name: "deferrable", Value: c.Deferrable},
	}
}

func (i *Index) Kind() string   { return KindIndex }
func (i *Index) Parent() *Table { return i.table }

func (i *Index) Properties() []object.Property {
	return []object.Property{
		{Name: "unique", Value: i.Unique},
		{Name: "method", Value: i.Method},
		{Name: "columns", Value: i.Columns},
		{Name: "where", Value: i.Where},
	}
}

func (t *Trigger) Kind() string   { return KindTrigger }
func (t *Trigger) Parent() *Table { return t.table }

func (t *Trigger) Properties() []object.Property {
	return []object.Property{
		{Name: "timing", Value: t.Timing},
		{Name: "events", Value: t.Events},
		{Name: "orientation", Value: t.Orientation},
		{Name: "when", Value: t.When},
		{Name: "action", Value: t.Action},
	}
}

func (p *Privilege) Kind() string   { return KindPrivilege }
func (p *Privilege) Parent() *Table { return p.table }

func (p *Privilege) Key() object.Key {
	return object.Key{Name: p.Grantee, SpecificName: string(p.Type)}
}

func (p *Privilege) Properties() []object.Property {
	return []object.Property{
		{Name: "grantor", Value: p.Grantor},
		{Name: "grantable", Value: p.Grantable},
	}
}
