package parser

type (
	// CreateViewStmt represents a CREATE VIEW statement. The query is kept as
	// normalized text.
	//   CREATE [OR REPLACE] [MATERIALIZED] VIEW [IF NOT EXISTS] [schema.]name [(columns)] AS query
	CreateViewStmt struct {
		Create       string        `parser:"'CREATE'"`
		OrReplace    bool          `parser:"@('OR' 'REPLACE')?"`
		Materialized bool          `parser:"@'MATERIALIZED'?"`
		View         string        `parser:"'VIEW'"`
		IfNotExists  bool          `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name         QualifiedName `parser:"@@"`
		Columns      *ColumnNames  `parser:"@@?"`
		Query        []string      `parser:"'AS' @!';'+"`
	}
)

// Definition returns the view query.
func (s *CreateViewStmt) Definition() string {
	return joinTokens(s.Query)
}
