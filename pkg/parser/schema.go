package parser

type (
	// CreateSchemaStmt represents a CREATE SCHEMA statement. CREATE DATABASE is
	// accepted as a synonym, as MySQL and ClickHouse use it.
	//   CREATE {SCHEMA | DATABASE} [IF NOT EXISTS] name [AUTHORIZATION owner] [options]
	CreateSchemaStmt struct {
		Create      string         `parser:"'CREATE'"`
		Schema      string         `parser:"('SCHEMA' | 'DATABASE')"`
		IfNotExists bool           `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        string         `parser:"@(Ident | QuotedIdent | BacktickIdent)"`
		Owner       *string        `parser:"('AUTHORIZATION' @(Ident | QuotedIdent | BacktickIdent))?"`
		Options     []*TableOption `parser:"@@*"`
	}

	// CommentOnStmt represents a COMMENT ON statement.
	//   COMMENT ON {SCHEMA | TABLE | VIEW | MATERIALIZED VIEW | COLUMN} name IS {'text' | NULL}
	CommentOnStmt struct {
		Comment string        `parser:"'COMMENT' 'ON'"`
		Target  []string      `parser:"@('SCHEMA' | 'TABLE' | 'VIEW' | 'MATERIALIZED' 'VIEW' | 'COLUMN')"`
		Name    QualifiedName `parser:"@@"`
		Text    *string       `parser:"'IS' (@String | 'NULL')"`
	}
)

// Comment returns the schema comment option, if any.
func (s *CreateSchemaStmt) Comment() *string {
	return tableComment(s.Options)
}
