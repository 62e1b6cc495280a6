package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/utils"
)

// typeSuffixes stay after the arguments of a column type: timestamp(3) with time zone.
var typeSuffixes = []string{" with time zone", " without time zone", " unsigned", "[]"}

// writeSQL renders cat as DDL the parser reads back. Triggers, grants and routines
// have no DDL form in the parser's grammar and are left out, as are the data types
// of view columns.
func writeSQL(w io.Writer, cat *catalog.Catalog) error {
	var stmts []string
	for _, s := range cat.Schemas.All() {
		stmts = append(stmts, schemaSQL(s)...)
	}

	if _, err := io.WriteString(w, strings.Join(stmts, "\n\n")+"\n"); err != nil {
		return errors.Wrap(err, "failed to write SQL")
	}
	return nil
}

func schemaSQL(s *catalog.Schema) []string {
	b := utils.NewSQLBuilder().Create("SCHEMA").Name(s.Name)
	if s.Owner != "" {
		b.Raw("AUTHORIZATION").Name(s.Owner)
	}

	stmts := []string{b.String()}
	if s.Comment != "" {
		stmts = append(stmts, commentOn("SCHEMA", utils.QuoteIdentifier(s.Name), s.Comment))
	}

	for _, u := range s.Types.All() {
		stmts = append(stmts, typeSQL(s, u))
	}

	for _, q := range s.Sequences.All() {
		stmts = append(stmts, sequenceSQL(s, q))
	}

	for _, t := range s.Tables.All() {
		stmts = append(stmts, tableSQL(s, t)...)
	}

	for _, v := range s.Views.All() {
		stmts = append(stmts, viewSQL(s, v)...)
	}

	return stmts
}

func typeSQL(s *catalog.Schema, u *catalog.UserType) string {
	switch u.Category {
	case catalog.DomainType:
		return utils.NewSQLBuilder().Create("DOMAIN").QualifiedName(s.Name, u.Name).As(u.BaseType).String()
	case catalog.CompositeType:
		return utils.NewSQLBuilder().Create("TYPE").QualifiedName(s.Name, u.Name).Raw("AS").List(u.Values).String()
	}

	values := make([]string, len(u.Values))
	for i, v := range u.Values {
		values[i] = utils.QuoteString(v)
	}
	return utils.NewSQLBuilder().Create("TYPE").QualifiedName(s.Name, u.Name).Raw("AS ENUM").List(values).String()
}

func sequenceSQL(s *catalog.Schema, q *catalog.Sequence) string {
	b := utils.NewSQLBuilder().Create("SEQUENCE").QualifiedName(s.Name, q.Name).As(q.DataType)

	option := func(keyword string, v *int64) {
		if v != nil {
			b.Raw(fmt.Sprintf("%s %d", keyword, *v))
		}
	}
	option("START WITH", q.Start)
	option("INCREMENT BY", q.Increment)
	option("MINVALUE", q.MinValue)
	option("MAXVALUE", q.MaxValue)
	option("CACHE", q.Cache)
	if q.Cycle {
		b.Raw("CYCLE")
	}

	return b.String()
}

func tableSQL(s *catalog.Schema, t *catalog.Table) []string {
	var elements []string
	for _, c := range t.Columns.All() {
		elements = append(elements, columnSQL(c))
	}
	for _, c := range t.Constraints.All() {
		elements = append(elements, constraintSQL(c))
	}

	b := utils.NewSQLBuilder().
		Create("TABLE").
		QualifiedName(s.Name, t.Name).
		Raw("(\n  " + strings.Join(elements, ",\n  ") + "\n)").
		Engine(t.Engine)

	stmts := []string{b.String()}
	table := utils.QuoteQualified(s.Name, t.Name)
	if t.Comment != "" {
		stmts = append(stmts, commentOn("TABLE", table, t.Comment))
	}

	for _, c := range t.Columns.All() {
		if c.Comment != "" {
			stmts = append(stmts, commentOn("COLUMN", table+"."+utils.QuoteIdentifier(c.Name), c.Comment))
		}
	}

	for _, i := range t.Indexes.All() {
		stmts = append(stmts, indexSQL(s, t, i))
	}

	return stmts
}

func columnSQL(c *catalog.Column) string {
	b := utils.NewSQLBuilder().Name(c.Name).Raw(dataTypeSQL(c))
	if !c.Nullable {
		b.Raw("NOT NULL")
	}
	if c.DefaultValue != nil {
		b.Raw("DEFAULT").Raw(*c.DefaultValue)
	}
	if c.AutoIncrement {
		b.Raw("GENERATED BY DEFAULT AS IDENTITY")
	}
	return b.StringWithoutSemicolon()
}

// dataTypeSQL renders the column type with its length or precision and scale.
func dataTypeSQL(c *catalog.Column) string {
	var args []string
	switch {
	case c.Precision != nil:
		args = append(args, fmt.Sprint(*c.Precision))
		if c.Scale != nil {
			args = append(args, fmt.Sprint(*c.Scale))
		}
	case c.Length != nil:
		args = append(args, fmt.Sprint(*c.Length))
	}

	if len(args) == 0 {
		return c.DataType
	}

	name, suffix := c.DataType, ""
	for _, s := range typeSuffixes {
		if strings.HasSuffix(name, s) {
			name, suffix = strings.TrimSuffix(name, s), s
			break
		}
	}
	return name + "(" + strings.Join(args, ", ") + ")" + suffix
}

func constraintSQL(c *catalog.Constraint) string {
	b := utils.NewSQLBuilder().Raw("CONSTRAINT").Name(c.Name)

	switch c.Type {
	case catalog.PrimaryKey:
		b.Raw("PRIMARY KEY").List(quoteAll(c.Columns))
	case catalog.Unique:
		b.Raw("UNIQUE").List(quoteAll(c.Columns))
	case catalog.ForeignKey:
		b.Raw("FOREIGN KEY").List(quoteAll(c.Columns)).
			Raw("REFERENCES").
			QualifiedName(c.ReferencedSchema, c.ReferencedTable)
		if len(c.ReferencedColumns) > 0 {
			b.List(quoteAll(c.ReferencedColumns))
		}
		if c.OnDelete != "" {
			b.Raw("ON DELETE " + string(c.OnDelete))
		}
		if c.OnUpdate != "" {
			b.Raw("ON UPDATE " + string(c.OnUpdate))
		}
	case catalog.Check:
		b.Raw("CHECK (" + c.CheckExpression + ")")
	}

	if c.Deferrable {
		b.Raw("DEFERRABLE")
	}
	return b.StringWithoutSemicolon()
}

func indexSQL(s *catalog.Schema, t *catalog.Table, i *catalog.Index) string {
	kind := "INDEX"
	if i.Unique {
		kind = "UNIQUE INDEX"
	}

	b := utils.NewSQLBuilder().Create(kind).Name(i.Name).Raw("ON").QualifiedName(s.Name, t.Name)
	if i.Method != "" {
		b.Raw("USING " + i.Method)
	}

	cols := make([]string, len(i.Columns))
	for n, c := range i.Columns {
		if strings.ContainsAny(c, " ()") {
			cols[n] = c
		} else {
			cols[n] = utils.QuoteIdentifier(c)
		}
	}
	b.List(cols)

	if i.Where != "" {
		b.Raw("WHERE " + i.Where)
	}
	return b.String()
}

func viewSQL(s *catalog.Schema, v *catalog.View) []string {
	kind := "VIEW"
	if v.Materialized {
		kind = "MATERIALIZED VIEW"
	}

	b := utils.NewSQLBuilder().Create(kind).QualifiedName(s.Name, v.Name)
	if v.Columns.Len() > 0 {
		b.List(quoteAll(v.Columns.Names()))
	}

	stmts := []string{b.As(v.Definition).String()}
	if v.Comment != "" {
		stmts = append(stmts, commentOn(kind, utils.QuoteQualified(s.Name, v.Name), v.Comment))
	}
	return stmts
}

func commentOn(kind, target, text string) string {
	return utils.NewSQLBuilder().Raw("COMMENT ON " + kind + " " + target + " IS").Escaped(text).String()
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = utils.QuoteIdentifier(n)
	}
	return out
}
