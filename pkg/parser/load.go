package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/object"
	"github.com/pseudomuto/schemata/pkg/utils"
)

// Load applies the statements to cat in order. Objects named without a schema go to
// defaultSchema; schemas are created as they are referenced.
//
// A CREATE for an existing object fails with object.ErrDuplicateName unless it says
// IF NOT EXISTS (the statement is skipped) or OR REPLACE (the object is replaced).
// CREATE INDEX and COMMENT ON fail with catalog.ErrNotFound when their target is
// missing.
func (s *SQL) Load(cat *catalog.Catalog, defaultSchema string) error {
	l := &loader{cat: cat, defaultSchema: defaultSchema}

	for i, stmt := range s.Statements {
		if err := l.statement(stmt); err != nil {
			return errors.Wrapf(err, "statement %d", i+1)
		}
	}

	return nil
}

type loader struct {
	cat           *catalog.Catalog
	defaultSchema string
}

func (l *loader) statement(stmt *Statement) error {
	switch {
	case stmt.CreateSchema != nil:
		return l.createSchema(stmt.CreateSchema)
	case stmt.CreateTable != nil:
		return l.createTable(stmt.CreateTable)
	case stmt.CreateView != nil:
		return l.createView(stmt.CreateView)
	case stmt.CreateSequence != nil:
		return l.createSequence(stmt.CreateSequence)
	case stmt.CreateIndex != nil:
		return l.createIndex(stmt.CreateIndex)
	case stmt.CreateType != nil:
		return l.createType(stmt.CreateType)
	case stmt.CreateDomain != nil:
		return l.createDomain(stmt.CreateDomain)
	case stmt.CommentOn != nil:
		return l.commentOn(stmt.CommentOn)
	}

	return nil
}

func (l *loader) schema(name QualifiedName) *catalog.Schema {
	return l.cat.EnsureSchema(name.Schema(l.defaultSchema))
}

// lookup finds the schema of name without creating it.
func (l *loader) lookup(name QualifiedName) (*catalog.Schema, bool) {
	return l.cat.Schema(name.Schema(l.defaultSchema))
}

func (l *loader) createSchema(stmt *CreateSchemaStmt) error {
	name := utils.Unquote(stmt.Name)
	if _, exists := l.cat.Schema(name); exists && !stmt.IfNotExists {
		return errors.Wrapf(object.ErrDuplicateName, "schema %s", name)
	}

	s := l.cat.EnsureSchema(name)
	if stmt.Owner != nil {
		s.Owner = utils.Unquote(*stmt.Owner)
	}
	if c := stmt.Comment(); c != nil {
		s.Comment = utils.UnquoteString(*c)
	}
	return nil
}

// replace reports whether creating name in list should go ahead, removing the
// existing element for OR REPLACE.
func replace[T object.Object](list *object.List[T], name string, orReplace, ifNotExists bool) bool {
	if _, exists := list.Get(name); !exists {
		return true
	}

	switch {
	case orReplace:
		list.Remove(object.Key{Name: name})
		return true
	case ifNotExists:
		return false
	}
	return true
}

func (l *loader) createTable(stmt *CreateTableStmt) error {
	s := l.schema(stmt.Name)
	name := stmt.Name.Object()
	if !replace(s.Tables, name, stmt.OrReplace, stmt.IfNotExists) {
		return nil
	}

	_, err := s.Tables.Add(func(t *catalog.Table) error {
		t.Name = name
		t.Engine = stmt.Engine()
		if c := stmt.Comment(); c != nil {
			t.Comment = utils.UnquoteString(*c)
		}

		for _, el := range stmt.Elements {
			if el.Column != nil {
				if err := addColumn(t, el.Column); err != nil {
					return err
				}
			}
		}

		for _, el := range stmt.Elements {
			var err error
			switch {
			case el.Constraint != nil:
				err = addTableConstraint(t, el.Constraint)
			case el.Index != nil:
				err = addInlineIndex(t, el.Index)
			}
			if err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrapf(err, "table %s", stmt.Name)
}

func addColumn(t *catalog.Table, def *ColumnDef) error {
	col, err := t.Columns.Add(func(c *catalog.Column) error {
		c.Name = utils.Unquote(def.Name)
		c.Nullable = true
		return applyType(c, def.Type)
	})
	if err != nil {
		return errors.Wrapf(err, "column %s", def.Name)
	}

	// A pending CONSTRAINT name applies to the next constraint option.
	var pending string
	named := func(fallback string) string {
		name := pending
		pending = ""
		if name == "" {
			return fallback
		}
		return name
	}

	for _, opt := range def.Options {
		switch {
		case opt.Constraint != nil:
			pending = utils.Unquote(*opt.Constraint)
		case opt.NotNull:
			col.Nullable = false
		case opt.Null:
			col.Nullable = true
		case opt.Default != nil:
			col.DefaultValue = utils.Ptr(opt.Default.String())
		case opt.AutoIncrement, opt.Identity:
			col.AutoIncrement = true
		case opt.Comment != nil:
			col.Comment = utils.UnquoteString(*opt.Comment)
		case opt.PrimaryKey:
			col.Nullable = false
			err = addConstraint(t, named(ConstraintName(t.Name, "pkey")), func(c *catalog.Constraint) error {
				c.Type = catalog.PrimaryKey
				c.Columns = []string{col.Name}
				return nil
			})
		case opt.Unique:
			err = addConstraint(t, named(ConstraintName(t.Name, "key", col.Name)), func(c *catalog.Constraint) error {
				c.Type = catalog.Unique
				c.Columns = []string{col.Name}
				return nil
			})
		case opt.References != nil:
			err = addConstraint(t, named(ConstraintName(t.Name, "fkey", col.Name)), func(c *catalog.Constraint) error {
				c.Type = catalog.ForeignKey
				c.Columns = []string{col.Name}
				return applyReference(c, opt.References)
			})
		case opt.Check != nil:
			err = addConstraint(t, named(ConstraintName(t.Name, "check", col.Name)), func(c *catalog.Constraint) error {
				c.Type = catalog.Check
				c.CheckExpression = opt.Check.Inner()
				return nil
			})
		}

		if err != nil {
			return errors.Wrapf(err, "column %s", col.Name)
		}
	}

	return nil
}

// numericTypes take (precision, scale) arguments; other types take a length.
var numericTypes = map[string]bool{
	"numeric": true, "decimal": true, "dec": true, "number": true,
	"float": true, "double": true, "real": true, "double precision": true,
	"decimal32": true, "decimal64": true, "decimal128": true, "decimal256": true,
}

// serialTypes are PostgreSQL shorthands for an integer with a sequence default.
var serialTypes = map[string]string{
	"serial": "integer", "serial4": "integer",
	"bigserial": "bigint", "serial8": "bigint",
	"smallserial": "smallint", "serial2": "smallint",
}

// applyType sets the data type of c. Integer arguments become length or
// precision and scale; any other arguments stay part of the type name.
func applyType(c *catalog.Column, dt *DataType) error {
	name := strings.ToLower(dt.Name())
	if base, ok := serialTypes[name]; ok && dt.Args == nil {
		c.DataType = base
		c.AutoIncrement = true
		c.Nullable = false
		return nil
	}

	args := []string(nil)
	if dt.Args != nil {
		args = dt.Args.Args()
	}

	numeric := len(args) > 0 && len(args) <= 2
	for _, a := range args {
		numeric = numeric && utils.IsIntegerValue(a)
	}
	if !numeric {
		c.DataType = dt.String()
		return nil
	}

	plain := *dt
	plain.Args = nil
	c.DataType = plain.String()

	values := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid type argument %q", a)
		}
		values[i] = v
	}

	if numericTypes[name] || strings.HasPrefix(name, "decimal") {
		c.Precision = &values[0]
		if len(values) > 1 {
			c.Scale = &values[1]
		}
		return nil
	}

	if len(values) > 1 {
		c.DataType = dt.String()
		return nil
	}
	c.Length = &values[0]
	return nil
}

func addConstraint(t *catalog.Table, name string, configure func(*catalog.Constraint) error) error {
	name = uniqueName(t.Constraints, name)
	_, err := t.Constraints.Add(func(c *catalog.Constraint) error {
		c.Name = name
		return configure(c)
	})
	return errors.Wrapf(err, "constraint %s", name)
}

// uniqueName appends a counter to base while it is taken, the way PostgreSQL names
// unnamed constraints.
func uniqueName[T object.Object](list *object.List[T], base string) string {
	name := base
	for i := 1; ; i++ {
		if _, taken := list.Get(name); !taken {
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

func applyReference(c *catalog.Constraint, ref *Reference) error {
	c.ReferencedSchema = ref.Table.Schema("")
	c.ReferencedTable = ref.Table.Object()
	c.ReferencedColumns = ref.Columns.Unquoted()

	var err error
	if a := ref.Action("DELETE"); a != "" {
		if c.OnDelete, err = catalog.ParseReferentialAction(a); err != nil {
			return err
		}
	}
	if a := ref.Action("UPDATE"); a != "" {
		if c.OnUpdate, err = catalog.ParseReferentialAction(a); err != nil {
			return err
		}
	}
	return nil
}

func addTableConstraint(t *catalog.Table, tc *TableConstraint) error {
	var name string
	if tc.Name != nil {
		name = utils.Unquote(*tc.Name)
	}

	named := func(suffix string, cols []string) string {
		if name != "" {
			return name
		}
		return ConstraintName(t.Name, suffix, cols...)
	}

	deferrable := tc.Deferrable && !tc.NotDeferrable
	body := tc.Body

	switch {
	case body.PrimaryKey != nil:
		cols := body.PrimaryKey.Unquoted()
		for _, cn := range cols {
			if col, ok := t.Column(cn); ok {
				col.Nullable = false
			}
		}
		return addConstraint(t, named("pkey", nil), func(c *catalog.Constraint) error {
			c.Type = catalog.PrimaryKey
			c.Columns = cols
			c.Deferrable = deferrable
			return nil
		})
	case body.Unique != nil:
		cols := body.Unique.Unquoted()
		return addConstraint(t, named("key", cols), func(c *catalog.Constraint) error {
			c.Type = catalog.Unique
			c.Columns = cols
			c.Deferrable = deferrable
			return nil
		})
	case body.ForeignKey != nil:
		cols := body.ForeignKey.Columns.Unquoted()
		return addConstraint(t, named("fkey", cols), func(c *catalog.Constraint) error {
			c.Type = catalog.ForeignKey
			c.Columns = cols
			c.Deferrable = deferrable
			return applyReference(c, body.ForeignKey.References)
		})
	case body.Check != nil:
		return addConstraint(t, named("check", nil), func(c *catalog.Constraint) error {
			c.Type = catalog.Check
			c.CheckExpression = body.Check.Inner()
			return nil
		})
	}

	return nil
}

func addInlineIndex(t *catalog.Table, idx *InlineIndex) error {
	_, err := t.Indexes.Add(func(i *catalog.Index) error {
		i.Name = utils.Unquote(idx.Name)
		i.Unique = idx.Unique
		i.Columns = idx.Columns.Unquoted()
		if idx.Kind != nil {
			i.Method = strings.ToLower(*idx.Kind)
		}
		return nil
	})
	return errors.Wrapf(err, "index %s", idx.Name)
}

func (l *loader) createView(stmt *CreateViewStmt) error {
	s := l.schema(stmt.Name)
	name := stmt.Name.Object()
	if !replace(s.Views, name, stmt.OrReplace, stmt.IfNotExists) {
		return nil
	}

	_, err := s.Views.Add(func(v *catalog.View) error {
		v.Name = name
		v.Materialized = stmt.Materialized
		v.Definition = stmt.Definition()

		for _, cn := range stmt.Columns.Unquoted() {
			_, err := v.Columns.Add(func(c *catalog.Column) error {
				c.Name = cn
				c.Nullable = true
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return errors.Wrapf(err, "view %s", stmt.Name)
}

func (l *loader) createSequence(stmt *CreateSequenceStmt) error {
	s := l.schema(stmt.Name)
	name := stmt.Name.Object()
	if !replace(s.Sequences, name, false, stmt.IfNotExists) {
		return nil
	}

	_, err := s.Sequences.Add(func(q *catalog.Sequence) error {
		q.Name = name
		for _, opt := range stmt.Options {
			var err error
			switch {
			case opt.DataType != nil:
				q.DataType = opt.DataType.String()
			case opt.Increment != nil:
				q.Increment, err = parseInt(*opt.Increment)
			case opt.Start != nil:
				q.Start, err = parseInt(*opt.Start)
			case opt.MinValue != nil:
				q.MinValue, err = parseInt(*opt.MinValue)
			case opt.MaxValue != nil:
				q.MaxValue, err = parseInt(*opt.MaxValue)
			case opt.Cache != nil:
				q.Cache, err = parseInt(*opt.Cache)
			case opt.Cycle:
				q.Cycle = true
			case opt.NoCycle:
				q.Cycle = false
			}
			if err != nil {
				return err
			}
		}
		return nil
	})

	return errors.Wrapf(err, "sequence %s", stmt.Name)
}

func parseInt(s string) (*int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid integer %q", s)
	}
	return &v, nil
}

func (l *loader) createIndex(stmt *CreateIndexStmt) error {
	s, ok := l.lookup(stmt.Table)
	if !ok {
		return errors.Wrapf(catalog.ErrNotFound, "schema of %s", stmt.Table)
	}

	t, ok := s.Table(stmt.Table.Object())
	if !ok {
		return errors.Wrapf(catalog.ErrNotFound, "table %s", stmt.Table)
	}

	name := utils.Unquote(stmt.Name)
	if !replace(t.Indexes, name, false, stmt.IfNotExists) {
		return nil
	}

	_, err := t.Indexes.Add(func(i *catalog.Index) error {
		i.Name = name
		i.Unique = stmt.Unique
		if stmt.Method != nil {
			i.Method = strings.ToLower(*stmt.Method)
		}
		for _, c := range stmt.Columns {
			i.Columns = append(i.Columns, c.String())
		}
		i.Where = stmt.Predicate()
		return nil
	})

	return errors.Wrapf(err, "index %s", name)
}

func (l *loader) createType(stmt *CreateTypeStmt) error {
	s := l.schema(stmt.Name)
	_, err := s.Types.Add(func(u *catalog.UserType) error {
		u.Name = stmt.Name.Object()
		if len(stmt.Body.Composite) > 0 {
			u.Category = catalog.CompositeType
			for _, a := range stmt.Body.Composite {
				u.Values = append(u.Values, utils.Unquote(a.Name)+" "+a.Type.String())
			}
			return nil
		}

		u.Category = catalog.EnumType
		for _, v := range stmt.Body.Enum {
			u.Values = append(u.Values, utils.UnquoteString(v))
		}
		return nil
	})

	return errors.Wrapf(err, "type %s", stmt.Name)
}

func (l *loader) createDomain(stmt *CreateDomainStmt) error {
	s := l.schema(stmt.Name)
	_, err := s.Types.Add(func(u *catalog.UserType) error {
		u.Name = stmt.Name.Object()
		u.Category = catalog.DomainType
		u.BaseType = stmt.Type.String()
		return nil
	})

	return errors.Wrapf(err, "domain %s", stmt.Name)
}

func (l *loader) commentOn(stmt *CommentOnStmt) error {
	var text string
	if stmt.Text != nil {
		text = utils.UnquoteString(*stmt.Text)
	}

	target := strings.ToUpper(stmt.Target[len(stmt.Target)-1])
	parts := stmt.Name.Parts

	notFound := func() error {
		return errors.Wrapf(catalog.ErrNotFound, "%s %s", strings.ToLower(target), stmt.Name)
	}

	switch target {
	case "SCHEMA":
		s, ok := l.cat.Schema(stmt.Name.Object())
		if !ok {
			return notFound()
		}
		s.Comment = text
	case "TABLE", "VIEW":
		s, ok := l.lookup(stmt.Name)
		if !ok {
			return notFound()
		}

		r, ok := s.Relation(stmt.Name.Object())
		if !ok || !strings.EqualFold(r.Kind(), target) {
			return notFound()
		}

		switch r := r.(type) {
		case *catalog.Table:
			r.Comment = text
		case *catalog.View:
			r.Comment = text
		}
	case "COLUMN":
		if len(parts) < 2 {
			return notFound()
		}

		rel := QualifiedName{Parts: parts[:len(parts)-1]}
		s, ok := l.lookup(rel)
		if !ok {
			return notFound()
		}

		r, ok := s.Relation(rel.Object())
		if !ok {
			return notFound()
		}

		c, ok := r.ColumnList().Get(stmt.Name.Object())
		if !ok {
			return notFound()
		}
		c.Comment = text
	}

	return nil
}
