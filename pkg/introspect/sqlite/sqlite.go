// Package sqlite reads catalogs from SQLite databases through sqlite_master and
// the table PRAGMAs. Importing it registers the "sqlite" driver.
//
// A SQLite file holds a single schema, reported as "main". CHECK constraints,
// triggers and privileges are not read.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/introspect"
	"github.com/pseudomuto/schemata/pkg/parser"
	"github.com/pseudomuto/schemata/pkg/utils"

	_ "modernc.org/sqlite"
)

// SchemaName is the schema every SQLite object is read into.
const SchemaName = "main"

func init() {
	introspect.Register(Loader{})
}

// Loader implements introspect.Loader for SQLite.
type Loader struct{}

func (Loader) Name() string { return "sqlite" }

// Load opens the database file named by dsn (a path, file:path or sqlite://path)
// and reads it. The catalog is named after the file.
func (Loader) Load(ctx context.Context, dsn string) (*catalog.Catalog, error) {
	path := normalizeDSN(dsn)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	defer func() { _ = db.Close() }()

	// PRAGMA queries run one after another on a single connection.
	db.SetMaxOpenConns(1)

	name := path
	if path != ":memory:" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return Read(ctx, db, name)
}

func normalizeDSN(dsn string) string {
	if strings.HasPrefix(dsn, "sqlite://") {
		return strings.TrimPrefix(dsn, "sqlite://")
	}
	if strings.HasPrefix(dsn, "file:") {
		return strings.TrimPrefix(dsn, "file:")
	}
	return dsn
}

type masterEntry struct {
	kind  string
	name  string
	table string
	sql   string
}

// Read builds a catalog named name from an open database. Every query is fully
// consumed before the next is issued, so db may be limited to one connection.
func Read(ctx context.Context, db *sql.DB, name string) (*catalog.Catalog, error) {
	entries, err := master(ctx, db)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(name)
	s := cat.EnsureSchema(SchemaName)

	for _, e := range entries {
		switch e.kind {
		case "table":
			err = readTable(ctx, db, s, e, entries)
		case "view":
			err = readView(ctx, db, s, e)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s", e.kind, e.name)
		}
	}

	return cat, nil
}

func master(ctx context.Context, db *sql.DB) ([]masterEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT type, name, tbl_name, coalesce(sql, '')
		FROM sqlite_master
		WHERE type IN ('table', 'view', 'index')
		  AND name NOT LIKE 'sqlite_%'
		ORDER BY type, name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query sqlite_master")
	}
	defer func() { _ = rows.Close() }()

	var entries []masterEntry
	for rows.Next() {
		var e masterEntry
		if err := rows.Scan(&e.kind, &e.name, &e.table, &e.sql); err != nil {
			return nil, errors.Wrap(err, "failed to scan sqlite_master row")
		}
		entries = append(entries, e)
	}

	return entries, errors.Wrap(rows.Err(), "error iterating sqlite_master rows")
}

type columnInfo struct {
	name     string
	typ      string
	notNull  bool
	dflt     sql.NullString
	pkOrder  int
	position int
}

func tableInfo(ctx context.Context, db *sql.DB, table string) ([]columnInfo, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", utils.QuoteIdentifier(table)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read table_info")
	}
	defer func() { _ = rows.Close() }()

	var cols []columnInfo
	for rows.Next() {
		var c columnInfo
		if err := rows.Scan(&c.position, &c.name, &c.typ, &c.notNull, &c.dflt, &c.pkOrder); err != nil {
			return nil, errors.Wrap(err, "failed to scan table_info row")
		}
		cols = append(cols, c)
	}

	return cols, errors.Wrap(rows.Err(), "error iterating table_info rows")
}

func readTable(ctx context.Context, db *sql.DB, s *catalog.Schema, e masterEntry, entries []masterEntry) error {
	cols, err := tableInfo(ctx, db, e.name)
	if err != nil {
		return err
	}

	autoIncrement := strings.Contains(strings.ToUpper(e.sql), "AUTOINCREMENT")

	_, err = s.Tables.Add(func(t *catalog.Table) error {
		t.Name = e.name

		var pk []string
		for _, ci := range cols {
			if ci.pkOrder > 0 {
				pk = append(pk, ci.name)
			}
		}

		for _, ci := range cols {
			_, err := t.Columns.Add(func(c *catalog.Column) error {
				c.Name = ci.name
				c.Nullable = !ci.notNull && ci.pkOrder == 0
				if ci.dflt.Valid {
					c.DefaultValue = utils.Ptr(ci.dflt.String)
				}
				c.AutoIncrement = autoIncrement && len(pk) == 1 && ci.pkOrder == 1
				return parser.SetColumnType(c, ci.typ)
			})
			if err != nil {
				return errors.Wrapf(err, "column %s", ci.name)
			}
		}

		if len(pk) > 0 {
			// table_info lists key columns in table order; pk holds their key position.
			ordered := make([]string, len(pk))
			for _, ci := range cols {
				if ci.pkOrder > 0 && ci.pkOrder <= len(ordered) {
					ordered[ci.pkOrder-1] = ci.name
				}
			}
			if err := addConstraint(t, parser.ConstraintName(t.Name, "pkey"), catalog.PrimaryKey, ordered); err != nil {
				return err
			}
		}

		if err := readForeignKeys(ctx, db, t); err != nil {
			return err
		}
		return readIndexes(ctx, db, t, entries)
	})

	return err
}

func addConstraint(t *catalog.Table, name string, typ catalog.ConstraintType, cols []string) error {
	_, err := t.Constraints.Add(func(c *catalog.Constraint) error {
		c.Name = uniqueName(t, name)
		c.Type = typ
		c.Columns = cols
		return nil
	})
	return errors.Wrapf(err, "constraint %s", name)
}

func uniqueName(t *catalog.Table, base string) string {
	name := base
	for i := 1; ; i++ {
		if _, taken := t.Constraints.Get(name); !taken {
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

type foreignKey struct {
	table    string
	from     []string
	to       []string
	onUpdate string
	onDelete string
}

func readForeignKeys(ctx context.Context, db *sql.DB, t *catalog.Table) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%s)", utils.QuoteIdentifier(t.Name)))
	if err != nil {
		return errors.Wrap(err, "failed to read foreign_key_list")
	}

	var (
		order []int
		keys  = map[int]*foreignKey{}
	)
	for rows.Next() {
		var (
			id, seq            int
			table, from, match string
			to                 sql.NullString
			onUpdate, onDelete string
		)
		if err := rows.Scan(&id, &seq, &table, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			_ = rows.Close()
			return errors.Wrap(err, "failed to scan foreign_key_list row")
		}

		fk, ok := keys[id]
		if !ok {
			fk = &foreignKey{table: table, onUpdate: onUpdate, onDelete: onDelete}
			keys[id] = fk
			order = append(order, id)
		}
		fk.from = append(fk.from, from)
		if to.Valid {
			fk.to = append(fk.to, to.String)
		}
	}
	if err := rows.Close(); err != nil {
		return errors.Wrap(err, "failed to close foreign_key_list rows")
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "error iterating foreign_key_list rows")
	}

	// SQLite numbers foreign keys in reverse declaration order.
	for i := len(order) - 1; i >= 0; i-- {
		fk := keys[order[i]]
		name := uniqueName(t, parser.ConstraintName(t.Name, "fkey", fk.from...))
		_, err := t.Constraints.Add(func(c *catalog.Constraint) error {
			c.Name = name
			c.Type = catalog.ForeignKey
			c.Columns = fk.from
			c.ReferencedTable = fk.table
			c.ReferencedColumns = fk.to

			var err error
			if c.OnDelete, err = introspect.ReferentialAction(fk.onDelete); err != nil {
				return err
			}
			c.OnUpdate, err = introspect.ReferentialAction(fk.onUpdate)
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "constraint %s", name)
		}
	}

	return nil
}

type indexEntry struct {
	name    string
	unique  bool
	origin  string
	partial bool
}

func readIndexes(ctx context.Context, db *sql.DB, t *catalog.Table, entries []masterEntry) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA index_list(%s)", utils.QuoteIdentifier(t.Name)))
	if err != nil {
		return errors.Wrap(err, "failed to read index_list")
	}

	var list []indexEntry
	for rows.Next() {
		var (
			seq int
			ie  indexEntry
		)
		if err := rows.Scan(&seq, &ie.name, &ie.unique, &ie.origin, &ie.partial); err != nil {
			_ = rows.Close()
			return errors.Wrap(err, "failed to scan index_list row")
		}
		list = append(list, ie)
	}
	if err := rows.Close(); err != nil {
		return errors.Wrap(err, "failed to close index_list rows")
	}

	// index_list reports the most recent index first.
	for i := len(list) - 1; i >= 0; i-- {
		ie := list[i]
		cols, err := indexColumns(ctx, db, ie.name)
		if err != nil {
			return err
		}

		switch ie.origin {
		case "u":
			err = addConstraint(t, parser.ConstraintName(t.Name, "key", cols...), catalog.Unique, cols)
		case "c":
			_, err = t.Indexes.Add(func(idx *catalog.Index) error {
				idx.Name = ie.name
				idx.Unique = ie.unique
				idx.Columns = cols
				if ie.partial {
					idx.Where = predicate(ie.name, entries)
				}
				return nil
			})
			err = errors.Wrapf(err, "index %s", ie.name)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func indexColumns(ctx context.Context, db *sql.DB, index string) ([]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA index_info(%s)", utils.QuoteIdentifier(index)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read index_info")
	}
	defer func() { _ = rows.Close() }()

	var cols []string
	for rows.Next() {
		var (
			seqno, cid int
			name       sql.NullString
		)
		if err := rows.Scan(&seqno, &cid, &name); err != nil {
			return nil, errors.Wrap(err, "failed to scan index_info row")
		}
		if name.Valid {
			cols = append(cols, name.String)
		}
	}

	return cols, errors.Wrap(rows.Err(), "error iterating index_info rows")
}

// predicate recovers the WHERE clause of a partial index from its DDL.
func predicate(index string, entries []masterEntry) string {
	for _, e := range entries {
		if e.kind != "index" || e.name != index {
			continue
		}

		stmts, err := parser.ParseString(e.sql)
		if err != nil || len(stmts.Statements) == 0 || stmts.Statements[0].CreateIndex == nil {
			return ""
		}
		return stmts.Statements[0].CreateIndex.Predicate()
	}
	return ""
}

func readView(ctx context.Context, db *sql.DB, s *catalog.Schema, e masterEntry) error {
	cols, err := tableInfo(ctx, db, e.name)
	if err != nil {
		return err
	}

	_, err = s.Views.Add(func(v *catalog.View) error {
		v.Name = e.name
		v.Definition = viewDefinition(e.sql)

		for _, ci := range cols {
			_, err := v.Columns.Add(func(c *catalog.Column) error {
				c.Name = ci.name
				c.Nullable = true
				return parser.SetColumnType(c, ci.typ)
			})
			if err != nil {
				return errors.Wrapf(err, "column %s", ci.name)
			}
		}
		return nil
	})

	return err
}

func viewDefinition(ddl string) string {
	stmts, err := parser.ParseString(ddl)
	if err == nil && len(stmts.Statements) > 0 && stmts.Statements[0].CreateView != nil {
		return stmts.Statements[0].CreateView.Definition()
	}
	return parser.Normalize(ddl)
}
