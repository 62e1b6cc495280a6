// Package introspect reads catalogs from live databases.
//
// Loaders live in subpackages and register themselves by driver name when
// imported:
//
//	import (
//		"github.com/pseudomuto/schemata/pkg/introspect"
//		_ "github.com/pseudomuto/schemata/pkg/introspect/sqlite"
//	)
//
//	cat, err := introspect.Load(ctx, "sqlite", "file:app.db")
//
// Loaders normalize what the server reports so that a catalog read from a
// database compares cleanly with one parsed from the DDL that created it:
// column types go through parser.SetColumnType, unnamed constraints get the
// names parser.ConstraintName gives them and NO ACTION referential actions are
// left empty.
package introspect
