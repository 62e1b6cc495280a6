package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
)

// DefaultSchema receives objects whose names are not schema qualified.
const DefaultSchema = "public"

var (
	ddlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'([^'\\]|\\.|'')*'`},
		{Name: "QuotedIdent", Pattern: `"([^"]|"")*"`},
		{Name: "BacktickIdent", Pattern: "`([^`]|``)*`"},
		{Name: "Number", Pattern: `\d+(\.\d*)?([eE][-+]?\d+)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Operator", Pattern: `::|<=|>=|<>|!=|\|\|`},
		{Name: "Punct", Pattern: `[(),.;=+\-*/%<>\[\]!:|&^~@#?{}]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[SQL](
		participle.Lexer(ddlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(8),
	)
)

type (
	// SQL is a parsed DDL script.
	SQL struct {
		Statements []*Statement `parser:"';'* (@@ ';'*)*"`
	}

	// Statement is one of the supported DDL statements.
	Statement struct {
		CreateSchema   *CreateSchemaStmt   `parser:"@@"`
		CreateTable    *CreateTableStmt    `parser:"| @@"`
		CreateView     *CreateViewStmt     `parser:"| @@"`
		CreateSequence *CreateSequenceStmt `parser:"| @@"`
		CreateIndex    *CreateIndexStmt    `parser:"| @@"`
		CreateType     *CreateTypeStmt     `parser:"| @@"`
		CreateDomain   *CreateDomainStmt   `parser:"| @@"`
		CommentOn      *CommentOnStmt      `parser:"| @@"`
	}
)

// Parse parses DDL statements from an io.Reader.
//
// Example usage:
//
//	f, err := os.Open("schema.sql")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	sql, err := parser.Parse(f)
//	if err != nil {
//		return err
//	}
//
//	for _, stmt := range sql.Statements {
//		if stmt.CreateTable != nil {
//			fmt.Println(stmt.CreateTable.Name)
//		}
//	}
func Parse(reader io.Reader) (*SQL, error) {
	sql, err := parser.Parse("", reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return sql, nil
}

// ParseString parses DDL statements from a string.
func ParseString(sql string) (*SQL, error) {
	return Parse(strings.NewReader(sql))
}

// LoadCatalog parses r and loads every statement into a new catalog named name.
// Unqualified objects land in DefaultSchema.
func LoadCatalog(name string, r io.Reader) (*catalog.Catalog, error) {
	sql, err := Parse(r)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(name)
	if err := sql.Load(cat, DefaultSchema); err != nil {
		return nil, err
	}

	return cat, nil
}
