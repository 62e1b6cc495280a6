package parser

import (
	"strings"
	"unicode"

	"github.com/pseudomuto/schemata/pkg/utils"
)

type (
	// QualifiedName is a dotted object name such as hr.EMP or "hr"."EMP". Parts keep
	// their quotes.
	QualifiedName struct {
		Parts []string `parser:"@(Ident | QuotedIdent | BacktickIdent) ('.' @(Ident | QuotedIdent | BacktickIdent))*"`
	}

	// ColumnNames is a parenthesized identifier list.
	ColumnNames struct {
		Names []string `parser:"'(' @(Ident | QuotedIdent | BacktickIdent) (',' @(Ident | QuotedIdent | BacktickIdent))* ')'"`
	}

	// Group is a balanced parenthesized token sequence, kept verbatim. It captures
	// expressions the grammar does not model: check conditions, type arguments,
	// engine parameters.
	Group struct {
		Items []*GroupItem `parser:"'(' @@* ')'"`
	}

	GroupItem struct {
		Group *Group `parser:"@@"`
		Token string `parser:"| @!('(' | ')')"`
	}
)

// Object returns the unquoted object name.
func (q QualifiedName) Object() string {
	if len(q.Parts) == 0 {
		return ""
	}
	return utils.Unquote(q.Parts[len(q.Parts)-1])
}

// Schema returns the unquoted schema name, or fallback when the name is not
// qualified. Of three or more parts the one before the object is the schema.
func (q QualifiedName) Schema(fallback string) string {
	if len(q.Parts) < 2 {
		return fallback
	}
	return utils.Unquote(q.Parts[len(q.Parts)-2])
}

func (q QualifiedName) String() string {
	return strings.Join(q.Parts, ".")
}

// Unquoted returns the names without quotes.
func (c *ColumnNames) Unquoted() []string {
	if c == nil {
		return nil
	}
	return unquoteAll(c.Names)
}

// Tokens returns the group's tokens, parentheses included.
func (g *Group) Tokens() []string {
	out := []string{"("}
	for _, item := range g.Items {
		if item.Group != nil {
			out = append(out, item.Group.Tokens()...)
		} else {
			out = append(out, item.Token)
		}
	}
	return append(out, ")")
}

// Inner returns the text between the outer parentheses.
func (g *Group) Inner() string {
	tokens := g.Tokens()
	return joinTokens(tokens[1 : len(tokens)-1])
}

// Args splits the group's top level items on commas.
func (g *Group) Args() []string {
	var (
		args    []string
		current []string
	)

	for _, item := range g.Items {
		switch {
		case item.Group != nil:
			current = append(current, item.Group.Tokens()...)
		case item.Token == ",":
			args = append(args, joinTokens(current))
			current = nil
		default:
			current = append(current, item.Token)
		}
	}

	if len(current) > 0 || len(args) > 0 {
		args = append(args, joinTokens(current))
	}
	return args
}

func (g *Group) String() string {
	return joinTokens(g.Tokens())
}

// joinTokens renders tokens as normalized SQL text: single spaces between words,
// none inside parentheses, before commas or around dots and casts.
func joinTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && needsSpace(tokens[i-1], tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

func needsSpace(prev, next string) bool {
	switch next {
	case ")", ",", ".", "::", "]", ";":
		return false
	case "(", "[":
		return !isWordToken(prev)
	}

	switch prev {
	case "(", ".", "::", "[":
		return false
	}
	return true
}

func isWordToken(tok string) bool {
	if tok == "" {
		return false
	}

	last := rune(tok[len(tok)-1])
	return unicode.IsLetter(last) || unicode.IsDigit(last) || last == '_' || last == '"' || last == '`'
}

func unquoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = utils.Unquote(n)
	}
	return out
}
