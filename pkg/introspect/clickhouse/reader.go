package clickhouse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/introspect"
	"github.com/pseudomuto/schemata/pkg/parser"
	"github.com/pseudomuto/schemata/pkg/utils"
)

// systemDatabases are managed by ClickHouse and never read.
var systemDatabases = []string{"system", "information_schema", "INFORMATION_SCHEMA"}

// databaseFilter builds the condition on column selecting the databases to read,
// with its parameters.
func databaseFilter(column string, databases []string) (string, []any) {
	names, op := databases, "IN"
	if len(names) == 0 {
		names, op = systemDatabases, "NOT IN"
	}

	placeholders := make([]string, len(names))
	params := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = "?"
		params[i] = name
	}

	return column + " " + op + " (" + strings.Join(placeholders, ", ") + ")", params
}

// Read builds a catalog of the named databases, or of every non-system database
// when none are named. The catalog is named after the server's current database.
func (c *Client) Read(ctx context.Context, databases ...string) (*catalog.Catalog, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}
	slog.Debug("reading clickhouse catalog", "version", version.String())

	var name string
	if err := c.conn.QueryRow(ctx, "SELECT currentDatabase()").Scan(&name); err != nil {
		return nil, errors.Wrap(err, "failed to query current database")
	}

	r := &reader{client: c, version: version, databases: databases, cat: catalog.New(name)}
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"databases", r.schemas},
		{"tables", r.tables},
		{"columns", r.columns},
		{"data skipping indices", r.indexes},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", step.name)
		}
	}

	return r.cat, nil
}

type reader struct {
	client    *Client
	version   Version
	databases []string
	cat       *catalog.Catalog
}

func (r *reader) query(ctx context.Context, query, column string, scan func(scan func(dest ...any) error) error) error {
	where, args := databaseFilter(column, r.databases)

	rows, err := r.client.conn.Query(ctx, strings.Replace(query, "%s", where, 1), args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows.Scan); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *reader) schema(name string) (*catalog.Schema, error) {
	s, ok := r.cat.Schema(name)
	if !ok {
		return nil, errors.Wrapf(catalog.ErrNotFound, "database %s", name)
	}
	return s, nil
}

func (r *reader) schemas(ctx context.Context) error {
	// system.databases gained its comment column in 22.8.
	comment := "''"
	if r.version.IsAtLeast(22, 8) {
		comment = "comment"
	}

	return r.query(ctx, `
		SELECT name, `+comment+`
		FROM system.databases
		WHERE %s
		ORDER BY name`, "name", func(scan func(...any) error) error {
		var name, comment string
		if err := scan(&name, &comment); err != nil {
			return err
		}

		_, err := r.cat.Schemas.Add(func(s *catalog.Schema) error {
			s.Name = name
			s.Comment = comment
			return nil
		})
		return err
	})
}

func (r *reader) tables(ctx context.Context) error {
	return r.query(ctx, `
		SELECT database, name, engine, comment, primary_key, as_select
		FROM system.tables
		WHERE is_temporary = 0
		  AND name NOT LIKE '.inner%'
		  AND %s
		ORDER BY database, name`, "database", func(scan func(...any) error) error {
		var database, name, engine, comment, primaryKey, asSelect string
		if err := scan(&database, &name, &engine, &comment, &primaryKey, &asSelect); err != nil {
			return err
		}

		s, err := r.schema(database)
		if err != nil {
			return err
		}

		switch engine {
		case "View", "MaterializedView":
			_, err = s.Views.Add(func(v *catalog.View) error {
				v.Name = name
				v.Comment = comment
				v.Materialized = engine == "MaterializedView"
				v.Definition = parser.Normalize(asSelect)
				return nil
			})
		case "Dictionary":
			return nil
		default:
			_, err = s.Tables.Add(func(t *catalog.Table) error {
				t.Name = name
				t.Engine = engine
				t.Comment = comment
				if cols := introspect.SplitList(primaryKey); len(cols) > 0 {
					_, err := t.Constraints.Add(func(c *catalog.Constraint) error {
						c.Name = parser.ConstraintName(name, "pkey")
						c.Type = catalog.PrimaryKey
						c.Columns = cols
						return nil
					})
					return err
				}
				return nil
			})
		}
		return errors.Wrapf(err, "table %s.%s", database, name)
	})
}

func (r *reader) columns(ctx context.Context) error {
	return r.query(ctx, `
		SELECT database, table, name, type, default_kind, default_expression, comment
		FROM system.columns
		WHERE %s
		ORDER BY database, table, position`, "database", func(scan func(...any) error) error {
		var database, table, name, typ, defaultKind, defaultExpr, comment string
		if err := scan(&database, &table, &name, &typ, &defaultKind, &defaultExpr, &comment); err != nil {
			return err
		}

		s, err := r.schema(database)
		if err != nil {
			return err
		}

		rel, ok := s.Relation(table)
		if !ok {
			// Dictionaries and internal tables.
			return nil
		}

		_, err = rel.ColumnList().Add(func(c *catalog.Column) error {
			c.Name = name
			c.Comment = comment

			if inner, ok := unwrap(typ, "Nullable"); ok {
				c.Nullable = true
				typ = inner
			}
			if err := parser.SetColumnType(c, typ); err != nil {
				return err
			}

			switch defaultKind {
			case "":
			case "DEFAULT":
				c.DefaultValue = utils.Ptr(defaultExpr)
			default:
				c.DefaultValue = utils.Ptr(defaultKind + " " + defaultExpr)
			}
			return nil
		})
		return errors.Wrapf(err, "column %s.%s.%s", database, table, name)
	})
}

// unwrap returns T for a type written wrapper(T).
func unwrap(typ, wrapper string) (string, bool) {
	if strings.HasPrefix(typ, wrapper+"(") && strings.HasSuffix(typ, ")") {
		return typ[len(wrapper)+1 : len(typ)-1], true
	}
	return typ, false
}

func (r *reader) indexes(ctx context.Context) error {
	return r.query(ctx, `
		SELECT database, table, name, type, expr
		FROM system.data_skipping_indices
		WHERE %s
		ORDER BY database, table, name`, "database", func(scan func(...any) error) error {
		var database, table, name, typ, expr string
		if err := scan(&database, &table, &name, &typ, &expr); err != nil {
			return err
		}

		s, err := r.schema(database)
		if err != nil {
			return err
		}

		t, ok := s.Table(table)
		if !ok {
			return errors.Wrapf(catalog.ErrNotFound, "table %s.%s", database, table)
		}

		_, err = t.Indexes.Add(func(i *catalog.Index) error {
			i.Name = name
			i.Method = typ
			i.Columns = []string{parser.Normalize(expr)}
			return nil
		})
		return errors.Wrapf(err, "index %s on %s.%s", name, database, table)
	})
}
