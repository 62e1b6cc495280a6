package parser

import (
	"github.com/pseudomuto/schemata/pkg/utils"
)

type (
	// CreateIndexStmt represents a CREATE INDEX statement.
	//   CREATE [UNIQUE] INDEX [CONCURRENTLY] [IF NOT EXISTS] name ON [schema.]table
	//     [USING method] (column | (expression) [ASC | DESC], ...) [WHERE predicate]
	CreateIndexStmt struct {
		Create       string         `parser:"'CREATE'"`
		Unique       bool           `parser:"@'UNIQUE'?"`
		Index        string         `parser:"'INDEX'"`
		Concurrently bool           `parser:"@'CONCURRENTLY'?"`
		IfNotExists  bool           `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name         string         `parser:"@(Ident | QuotedIdent | BacktickIdent)"`
		Table        QualifiedName  `parser:"'ON' @@"`
		Method       *string        `parser:"('USING' @Ident)?"`
		Columns      []*IndexColumn `parser:"'(' @@ (',' @@)* ')'"`
		Where        []string       `parser:"('WHERE' @!';'+)?"`
	}

	IndexColumn struct {
		Term  *IndexTerm `parser:"@@"`
		Order *string    `parser:"@('ASC' | 'DESC')?"`
	}

	// IndexTerm is a column name, optionally with a prefix length, or an expression.
	IndexTerm struct {
		Expression *Group `parser:"@@"`
		Call       *Call  `parser:"| @@"`
		Name       string `parser:"| @(QuotedIdent | BacktickIdent)"`
	}
)

// Predicate returns the normalized WHERE clause of a partial index.
func (s *CreateIndexStmt) Predicate() string {
	return joinTokens(s.Where)
}

// String renders the indexed column or expression.
func (c *IndexColumn) String() string {
	var s string
	switch t := c.Term; {
	case t.Expression != nil:
		s = t.Expression.String()
	case t.Call != nil && t.Call.Args != nil:
		s = t.Call.Name + t.Call.Args.String()
	case t.Call != nil:
		s = t.Call.Name
	default:
		s = utils.Unquote(t.Name)
	}

	if c.Order != nil {
		s += " " + *c.Order
	}
	return s
}
