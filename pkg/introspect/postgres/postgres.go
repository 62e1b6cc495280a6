// Package postgres reads catalogs from PostgreSQL through pg_catalog and
// information_schema. Importing it registers the "postgres" driver.
//
// Values PostgreSQL fills in for unspecified options are reported as empty: the
// btree access method, NO ACTION referential actions and default sequence
// bounds. Serial columns are reported as auto increment integers without a
// default, and sequences owned by a column are skipped.
package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/introspect"
	"github.com/pseudomuto/schemata/pkg/parser"
	"github.com/pseudomuto/schemata/pkg/utils"
)

func init() {
	introspect.Register(Loader{})
}

// Querier is the subset of pgx pools and connections the reader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Loader implements introspect.Loader for PostgreSQL.
type Loader struct{}

func (Loader) Name() string { return "postgres" }

// Load connects with a postgres:// URL or keyword/value DSN and reads the current
// database.
func (Loader) Load(ctx context.Context, dsn string) (*catalog.Catalog, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ping postgres")
	}

	return Read(ctx, pool)
}

// userSchemas filters pg_namespace n down to schemas created by users.
const userSchemas = `n.nspname NOT IN ('pg_catalog', 'information_schema')
	AND n.nspname NOT LIKE 'pg\_toast%'
	AND n.nspname NOT LIKE 'pg\_temp\_%'`

// Read builds a catalog of the database q is connected to. The catalog is named
// after the database.
func Read(ctx context.Context, q Querier) (*catalog.Catalog, error) {
	var name string
	if err := q.QueryRow(ctx, "SELECT current_database()").Scan(&name); err != nil {
		return nil, errors.Wrap(err, "failed to query current database")
	}

	r := &reader{q: q, cat: catalog.New(name)}
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"schemas", r.schemas},
		{"types", r.types},
		{"sequences", r.sequences},
		{"relations", r.relations},
		{"columns", r.columns},
		{"constraints", r.constraints},
		{"indexes", r.indexes},
		{"triggers", r.triggers},
		{"privileges", r.privileges},
		{"routines", r.routines},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", step.name)
		}
	}

	return r.cat, nil
}

type reader struct {
	q   Querier
	cat *catalog.Catalog
}

func collect[T any](ctx context.Context, q Querier, sql string) ([]T, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[T])
}

func (r *reader) schema(name string) (*catalog.Schema, error) {
	s, ok := r.cat.Schema(name)
	if !ok {
		return nil, errors.Wrapf(catalog.ErrNotFound, "schema %s", name)
	}
	return s, nil
}

func (r *reader) table(schema, name string) (*catalog.Table, error) {
	s, err := r.schema(schema)
	if err != nil {
		return nil, err
	}

	t, ok := s.Table(name)
	if !ok {
		return nil, errors.Wrapf(catalog.ErrNotFound, "table %s.%s", schema, name)
	}
	return t, nil
}

type schemaRow struct {
	Name    string
	Owner   string
	Comment string
}

func (r *reader) schemas(ctx context.Context) error {
	rows, err := collect[schemaRow](ctx, r.q, `
		SELECT n.nspname::text, pg_get_userbyid(n.nspowner)::text,
		       coalesce(obj_description(n.oid, 'pg_namespace'), '')
		FROM pg_namespace n
		WHERE `+userSchemas+`
		ORDER BY 1`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		_, err := r.cat.Schemas.Add(func(s *catalog.Schema) error {
			s.Name = row.Name
			s.Owner = row.Owner
			s.Comment = row.Comment
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type typeRow struct {
	Schema     string
	Name       string
	Category   string
	Labels     []string
	BaseType   string
	Attributes []string
}

func (r *reader) types(ctx context.Context) error {
	rows, err := collect[typeRow](ctx, r.q, `
		SELECT n.nspname::text, t.typname::text, t.typtype::text,
		       ARRAY(SELECT e.enumlabel::text FROM pg_enum e
		             WHERE e.enumtypid = t.oid ORDER BY e.enumsortorder),
		       CASE WHEN t.typtype = 'd' THEN format_type(t.typbasetype, t.typtypmod) ELSE '' END,
		       ARRAY(SELECT a.attname || ' ' || format_type(a.atttypid, a.atttypmod)
		             FROM pg_attribute a
		             WHERE a.attrelid = t.typrelid AND a.attnum > 0 AND NOT a.attisdropped
		             ORDER BY a.attnum)
		FROM pg_type t
		JOIN pg_namespace n ON n.oid = t.typnamespace
		LEFT JOIN pg_class c ON c.oid = t.typrelid
		WHERE (t.typtype IN ('e', 'd') OR (t.typtype = 'c' AND c.relkind = 'c'))
		  AND `+userSchemas+`
		ORDER BY 1, 2`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		s, err := r.schema(row.Schema)
		if err != nil {
			return err
		}

		_, err = s.Types.Add(func(u *catalog.UserType) error {
			u.Name = row.Name
			u.BaseType = row.BaseType

			var err error
			if u.Category, err = catalog.ParseTypeCategory(row.Category); err != nil {
				return err
			}

			switch u.Category {
			case catalog.EnumType:
				u.Values = row.Labels
			case catalog.CompositeType:
				u.Values = row.Attributes
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "type %s.%s", row.Schema, row.Name)
		}
	}
	return nil
}

type sequenceRow struct {
	Schema    string
	Name      string
	DataType  string
	Start     int64
	Increment int64
	MinValue  int64
	MaxValue  int64
	Cache     int64
	Cycle     bool
}

func (r *reader) sequences(ctx context.Context) error {
	rows, err := collect[sequenceRow](ctx, r.q, `
		SELECT s.schemaname::text, s.sequencename::text, format_type(s.data_type, NULL),
		       s.start_value, s.increment_by, s.min_value, s.max_value, s.cache_size, s.cycle
		FROM pg_sequences s
		JOIN pg_namespace n ON n.nspname = s.schemaname
		JOIN pg_class c ON c.relnamespace = n.oid AND c.relname = s.sequencename
		WHERE NOT EXISTS (
		        SELECT 1 FROM pg_depend d
		        WHERE d.objid = c.oid AND d.classid = 'pg_class'::regclass AND d.deptype IN ('a', 'i'))
		  AND `+userSchemas+`
		ORDER BY 1, 2`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		s, err := r.schema(row.Schema)
		if err != nil {
			return err
		}

		_, err = s.Sequences.Add(func(seq *catalog.Sequence) error {
			seq.Name = row.Name
			applySequence(seq, row)
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "sequence %s.%s", row.Schema, row.Name)
		}
	}
	return nil
}

// typeBounds are the implicit bounds of a sequence of each data type.
var typeBounds = map[string][2]int64{
	"smallint": {-32768, 32767},
	"integer":  {-2147483648, 2147483647},
	"bigint":   {-9223372036854775808, 9223372036854775807},
}

// applySequence copies row into seq, leaving out the values PostgreSQL would pick
// on its own.
func applySequence(seq *catalog.Sequence, row sequenceRow) {
	seq.Cycle = row.Cycle
	if row.DataType != "bigint" {
		seq.DataType = row.DataType
	}

	lo, hi := int64(1), typeBounds[row.DataType][1]
	if row.Increment < 0 {
		lo, hi = typeBounds[row.DataType][0], -1
	}

	if row.Increment != 1 {
		seq.Increment = utils.Ptr(row.Increment)
	}
	if row.MinValue != lo {
		seq.MinValue = utils.Ptr(row.MinValue)
	}
	if row.MaxValue != hi {
		seq.MaxValue = utils.Ptr(row.MaxValue)
	}

	start := row.MinValue
	if row.Increment < 0 {
		start = row.MaxValue
	}
	if row.Start != start {
		seq.Start = utils.Ptr(row.Start)
	}
	if row.Cache != 1 {
		seq.Cache = utils.Ptr(row.Cache)
	}
}

type relationRow struct {
	Schema     string
	Name       string
	Kind       string
	Comment    string
	Definition string
}

func (r *reader) relations(ctx context.Context) error {
	rows, err := collect[relationRow](ctx, r.q, `
		SELECT n.nspname::text, c.relname::text, c.relkind::text,
		       coalesce(obj_description(c.oid, 'pg_class'), ''),
		       CASE WHEN c.relkind IN ('v', 'm') THEN pg_get_viewdef(c.oid, true) ELSE '' END
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind IN ('r', 'p', 'v', 'm') AND NOT c.relispartition
		  AND `+userSchemas+`
		ORDER BY 1, 2`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		s, err := r.schema(row.Schema)
		if err != nil {
			return err
		}

		switch row.Kind {
		case "v", "m":
			_, err = s.Views.Add(func(v *catalog.View) error {
				v.Name = row.Name
				v.Comment = row.Comment
				v.Materialized = row.Kind == "m"
				v.Definition = parser.Normalize(row.Definition)
				return nil
			})
		default:
			_, err = s.Tables.Add(func(t *catalog.Table) error {
				t.Name = row.Name
				t.Comment = row.Comment
				return nil
			})
		}
		if err != nil {
			return errors.Wrapf(err, "relation %s.%s", row.Schema, row.Name)
		}
	}
	return nil
}

type columnRow struct {
	Schema   string
	Relation string
	Name     string
	Type     string
	NotNull  bool
	Default  *string
	Owned    bool
	Comment  string
}

func (r *reader) columns(ctx context.Context) error {
	rows, err := collect[columnRow](ctx, r.q, `
		SELECT n.nspname::text, c.relname::text, a.attname::text,
		       format_type(a.atttypid, a.atttypmod), a.attnotnull,
		       pg_get_expr(d.adbin, d.adrelid),
		       a.attidentity <> '' OR pg_get_serial_sequence(
		           quote_ident(n.nspname) || '.' || quote_ident(c.relname), a.attname) IS NOT NULL,
		       coalesce(col_description(c.oid, a.attnum), '')
		FROM pg_attribute a
		JOIN pg_class c ON c.oid = a.attrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_attrdef d ON d.adrelid = a.attrelid AND d.adnum = a.attnum
		WHERE a.attnum > 0 AND NOT a.attisdropped
		  AND c.relkind IN ('r', 'p', 'v', 'm') AND NOT c.relispartition
		  AND `+userSchemas+`
		ORDER BY 1, 2, a.attnum`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		s, err := r.schema(row.Schema)
		if err != nil {
			return err
		}

		rel, ok := s.Relation(row.Relation)
		if !ok {
			return errors.Wrapf(catalog.ErrNotFound, "relation %s.%s", row.Schema, row.Relation)
		}

		_, err = rel.ColumnList().Add(func(c *catalog.Column) error {
			c.Name = row.Name
			c.Comment = row.Comment
			if err := parser.SetColumnType(c, row.Type); err != nil {
				return err
			}
			c.Nullable = !row.NotNull
			c.AutoIncrement = row.Owned
			if !c.AutoIncrement {
				c.DefaultValue = row.Default
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "column %s.%s.%s", row.Schema, row.Relation, row.Name)
		}
	}
	return nil
}

type constraintRow struct {
	Schema            string
	Table             string
	Name              string
	Type              string
	Columns           []string
	ReferencedSchema  string
	ReferencedTable   string
	ReferencedColumns []string
	OnDelete          string
	OnUpdate          string
	Definition        string
	Deferrable        bool
}

func (r *reader) constraints(ctx context.Context) error {
	rows, err := collect[constraintRow](ctx, r.q, `
		SELECT n.nspname::text, c.relname::text, con.conname::text, con.contype::text,
		       ARRAY(SELECT a.attname::text
		             FROM unnest(con.conkey) WITH ORDINALITY k(num, ord)
		             JOIN pg_attribute a ON a.attrelid = con.conrelid AND a.attnum = k.num
		             ORDER BY k.ord),
		       coalesce(fn.nspname::text, ''), coalesce(fc.relname::text, ''),
		       ARRAY(SELECT a.attname::text
		             FROM unnest(con.confkey) WITH ORDINALITY k(num, ord)
		             JOIN pg_attribute a ON a.attrelid = con.confrelid AND a.attnum = k.num
		             ORDER BY k.ord),
		       con.confdeltype::text, con.confupdtype::text,
		       pg_get_constraintdef(con.oid, true), con.condeferrable
		FROM pg_constraint con
		JOIN pg_class c ON c.oid = con.conrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		LEFT JOIN pg_class fc ON fc.oid = con.confrelid
		LEFT JOIN pg_namespace fn ON fn.oid = fc.relnamespace
		WHERE con.contype IN ('p', 'u', 'f', 'c') AND c.relkind IN ('r', 'p')
		  AND NOT c.relispartition
		  AND `+userSchemas+`
		ORDER BY 1, 2, 3`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		t, err := r.table(row.Schema, row.Table)
		if err != nil {
			return err
		}

		_, err = t.Constraints.Add(func(c *catalog.Constraint) error {
			c.Name = row.Name
			c.Columns = row.Columns
			c.Deferrable = row.Deferrable

			var err error
			if c.Type, err = catalog.ParseConstraintType(row.Type); err != nil {
				return err
			}

			switch c.Type {
			case catalog.ForeignKey:
				c.ReferencedSchema = introspect.ReferencedSchema(row.Schema, row.ReferencedSchema)
				c.ReferencedTable = row.ReferencedTable
				c.ReferencedColumns = row.ReferencedColumns
				if c.OnDelete, err = introspect.ReferentialAction(row.OnDelete); err != nil {
					return err
				}
				c.OnUpdate, err = introspect.ReferentialAction(row.OnUpdate)
			case catalog.Check:
				c.Columns = nil
				c.CheckExpression = checkExpression(row.Definition)
			}
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "constraint %s on %s.%s", row.Name, row.Schema, row.Table)
		}
	}
	return nil
}

// checkExpression extracts the predicate from a "CHECK ((expr))" definition.
func checkExpression(def string) string {
	def = strings.TrimSpace(def)
	def = strings.TrimSuffix(def, " NOT VALID")
	def = strings.TrimSpace(strings.TrimPrefix(def, "CHECK"))
	if strings.HasPrefix(def, "(") && strings.HasSuffix(def, ")") {
		def = def[1 : len(def)-1]
	}
	return parser.Normalize(def)
}

type indexRow struct {
	Schema    string
	Table     string
	Name      string
	Unique    bool
	Method    string
	Columns   []string
	Predicate string
}

func (r *reader) indexes(ctx context.Context) error {
	rows, err := collect[indexRow](ctx, r.q, `
		SELECT n.nspname::text, t.relname::text, i.relname::text, ix.indisunique, am.amname::text,
		       ARRAY(SELECT pg_get_indexdef(ix.indexrelid, k, true)
		             FROM generate_series(1, ix.indnkeyatts) k ORDER BY k),
		       coalesce(pg_get_expr(ix.indpred, ix.indrelid, true), '')
		FROM pg_index ix
		JOIN pg_class i ON i.oid = ix.indexrelid
		JOIN pg_class t ON t.oid = ix.indrelid
		JOIN pg_namespace n ON n.oid = t.relnamespace
		JOIN pg_am am ON am.oid = i.relam
		WHERE t.relkind IN ('r', 'p') AND NOT t.relispartition
		  AND NOT EXISTS (
		        SELECT 1 FROM pg_constraint con
		        WHERE con.conindid = ix.indexrelid AND con.conrelid = ix.indrelid
		          AND con.contype IN ('p', 'u', 'x'))
		  AND `+userSchemas+`
		ORDER BY 1, 2, 3`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		t, err := r.table(row.Schema, row.Table)
		if err != nil {
			return err
		}

		_, err = t.Indexes.Add(func(i *catalog.Index) error {
			i.Name = row.Name
			i.Unique = row.Unique
			if row.Method != "btree" {
				i.Method = row.Method
			}
			for _, col := range row.Columns {
				i.Columns = append(i.Columns, utils.Unquote(col))
			}
			i.Where = parser.Normalize(row.Predicate)
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "index %s on %s.%s", row.Name, row.Schema, row.Table)
		}
	}
	return nil
}

type triggerRow struct {
	Schema      string
	Table       string
	Name        string
	Timing      string
	Events      string
	Orientation string
	When        string
	Action      string
}

func (r *reader) triggers(ctx context.Context) error {
	rows, err := collect[triggerRow](ctx, r.q, `
		SELECT event_object_schema::text, event_object_table::text, trigger_name::text,
		       action_timing::text,
		       string_agg(event_manipulation::text, ',' ORDER BY event_manipulation::text),
		       action_orientation::text, coalesce(action_condition::text, ''),
		       action_statement::text
		FROM information_schema.triggers
		WHERE event_object_schema NOT IN ('pg_catalog', 'information_schema')
		GROUP BY 1, 2, 3, 4, 6, 7, 8
		ORDER BY 1, 2, 3`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		t, err := r.table(row.Schema, row.Table)
		if errors.Is(err, catalog.ErrNotFound) {
			// Triggers on views.
			continue
		}
		if err != nil {
			return err
		}

		_, err = t.Triggers.Add(func(tr *catalog.Trigger) error {
			tr.Name = row.Name
			tr.When = row.When
			tr.Action = row.Action

			var err error
			if tr.Timing, err = catalog.ParseTriggerTiming(row.Timing); err != nil {
				return err
			}
			if tr.Events, err = catalog.ParseTriggerEvents(row.Events); err != nil {
				return err
			}
			tr.Orientation, err = catalog.ParseTriggerOrientation(row.Orientation)
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "trigger %s on %s.%s", row.Name, row.Schema, row.Table)
		}
	}
	return nil
}

type privilegeRow struct {
	Schema    string
	Table     string
	Grantee   string
	Type      string
	Grantor   string
	Grantable bool
}

func (r *reader) privileges(ctx context.Context) error {
	// Owners hold every privilege on their own tables; only explicit grants are read.
	rows, err := collect[privilegeRow](ctx, r.q, `
		SELECT table_schema::text, table_name::text, grantee::text, privilege_type::text,
		       grantor::text, is_grantable = 'YES'
		FROM information_schema.role_table_grants
		WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
		  AND grantee <> grantor
		ORDER BY 1, 2, 3, 4`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		t, err := r.table(row.Schema, row.Table)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		_, err = t.Privileges.Add(func(p *catalog.Privilege) error {
			p.Grantee = row.Grantee
			p.Grantor = row.Grantor
			p.Grantable = row.Grantable

			var err error
			p.Type, err = catalog.ParsePrivilegeType(row.Type)
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "grant of %s to %s on %s.%s", row.Type, row.Grantee, row.Schema, row.Table)
		}
	}
	return nil
}

type routineRow struct {
	Schema        string
	Name          string
	SpecificName  string
	Kind          string
	Returns       string
	Language      string
	Deterministic bool
	Body          string
	ArgNames      []string
	ArgTypes      []string
	ArgModes      []string
}

func (r *reader) routines(ctx context.Context) error {
	rows, err := collect[routineRow](ctx, r.q, `
		SELECT n.nspname::text, p.proname::text, p.proname::text || '_' || p.oid::text, p.prokind::text,
		       CASE WHEN p.prokind = 'p' THEN '' ELSE pg_get_function_result(p.oid) END,
		       l.lanname::text, p.provolatile = 'i', coalesce(p.prosrc, ''),
		       coalesce(p.proargnames, '{}'::text[]),
		       ARRAY(SELECT format_type(a.t, NULL)
		             FROM unnest(coalesce(p.proallargtypes, p.proargtypes::oid[])) WITH ORDINALITY a(t, o)
		             ORDER BY a.o),
		       coalesce(p.proargmodes::text[], '{}'::text[])
		FROM pg_proc p
		JOIN pg_namespace n ON n.oid = p.pronamespace
		JOIN pg_language l ON l.oid = p.prolang
		WHERE p.prokind IN ('f', 'p')
		  AND NOT EXISTS (SELECT 1 FROM pg_depend d WHERE d.objid = p.oid AND d.deptype = 'e')
		  AND `+userSchemas+`
		ORDER BY 1, 2, 3`)
	if err != nil {
		return err
	}

	for _, row := range rows {
		s, err := r.schema(row.Schema)
		if err != nil {
			return err
		}

		_, err = s.Routines.Add(func(rt *catalog.Routine) error {
			rt.Name = row.Name
			rt.SpecificName = row.SpecificName
			rt.ReturnType = row.Returns
			rt.Language = row.Language
			rt.Deterministic = row.Deterministic
			rt.Body = strings.TrimSpace(row.Body)

			var err error
			if rt.Type, err = catalog.ParseRoutineType(row.Kind); err != nil {
				return err
			}
			return addParameters(rt, row)
		})
		if err != nil {
			return errors.Wrapf(err, "routine %s.%s", row.Schema, row.SpecificName)
		}
	}
	return nil
}

// paramModes maps pg_proc argument modes; variadic arguments are inputs and
// TABLE columns are outputs.
var paramModes = map[string]catalog.ParameterMode{
	"i": catalog.In,
	"o": catalog.Out,
	"b": catalog.InOut,
	"v": catalog.In,
	"t": catalog.Out,
}

func addParameters(rt *catalog.Routine, row routineRow) error {
	for i, typ := range row.ArgTypes {
		_, err := rt.Parameters.Add(func(p *catalog.Parameter) error {
			if i < len(row.ArgNames) {
				p.Name = row.ArgNames[i]
			}
			p.DataType = typ
			p.Mode = catalog.In
			if i < len(row.ArgModes) {
				p.Mode = paramModes[row.ArgModes[i]]
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "parameter %d", i+1)
		}
	}
	return nil
}
