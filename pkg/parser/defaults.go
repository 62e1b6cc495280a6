package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
)

var typeParser = participle.MustBuild[DataType](
	participle.Lexer(ddlLexer),
	participle.Elide("Comment", "MultilineComment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(8),
)

// ParseDataType parses a single column type such as "numeric(10, 2)" or
// "timestamp with time zone".
func ParseDataType(s string) (*DataType, error) {
	dt, err := typeParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse type %q", s)
	}

	return dt, nil
}

// SetColumnType applies typ to c the same way a column definition is loaded, so
// catalogs read from a live database compare cleanly with ones parsed from DDL.
// Types the grammar cannot read are kept verbatim.
func SetColumnType(c *catalog.Column, typ string) error {
	dt, err := ParseDataType(typ)
	if err != nil {
		c.DataType = strings.TrimSpace(typ)
		return nil
	}

	return applyType(c, dt)
}

// ConstraintName is the name given to a constraint declared without one:
// emp_pkey, emp_dept_id_fkey, emp_a_b_key, emp_check.
func ConstraintName(table, suffix string, cols ...string) string {
	if len(cols) == 0 {
		return table + "_" + suffix
	}
	return table + "_" + strings.Join(cols, "_") + "_" + suffix
}

// Normalize re-renders a SQL fragment the way the parser renders expressions,
// view queries and index predicates: comments dropped, one space between words
// and no space inside parentheses. A trailing semicolon is removed. Fragments the
// lexer rejects are only trimmed.
func Normalize(fragment string) string {
	lex, err := ddlLexer.Lex("", strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	symbols := ddlLexer.Symbols()
	skip := map[lexer.TokenType]bool{
		symbols["Whitespace"]:       true,
		symbols["Comment"]:          true,
		symbols["MultilineComment"]: true,
	}

	var tokens []string
	for {
		tok, err := lex.Next()
		if err != nil {
			return strings.TrimSpace(fragment)
		}
		if tok.EOF() {
			break
		}
		if !skip[tok.Type] {
			tokens = append(tokens, tok.Value)
		}
	}

	for len(tokens) > 0 && tokens[len(tokens)-1] == ";" {
		tokens = tokens[:len(tokens)-1]
	}
	return joinTokens(tokens)
}
