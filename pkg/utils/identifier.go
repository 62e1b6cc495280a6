package utils

import "strings"

// QuoteIdentifier wraps name in double quotes, doubling any embedded quote.
//
// Examples:
//   - "table" -> "\"table\""
//   - "say \"hi\"" -> "\"say \"\"hi\"\"\""
//   - "" -> ""
func QuoteIdentifier(name string) string {
	if name == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteQualified quotes every non-empty part and joins them with dots.
//
// Examples:
//   - ("hr", "EMP") -> "\"hr\".\"EMP\""
//   - ("", "EMP") -> "\"EMP\""
func QuoteQualified(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			quoted = append(quoted, QuoteIdentifier(p))
		}
	}
	return strings.Join(quoted, ".")
}

// IsQuoted checks whether s is a single identifier wrapped in double quotes, backticks
// or square brackets.
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}

	switch s[0] {
	case '"', '`':
		return s[len(s)-1] == s[0]
	case '[':
		return s[len(s)-1] == ']'
	}
	return false
}

// Unquote removes identifier quotes and undoubles escaped quote characters. Names
// that are not quoted are returned unchanged.
//
// Examples:
//
//	Unquote(`"my table"`) // my table
//	Unquote("`a``b`")     // a`b
//	Unquote("[dbo]")      // dbo
//	Unquote("plain")      // plain
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}

	inner := s[1 : len(s)-1]
	switch s[0] {
	case '"':
		return strings.ReplaceAll(inner, `""`, `"`)
	case '`':
		return strings.ReplaceAll(inner, "``", "`")
	}
	return inner
}

// QuoteString renders s as a single quoted SQL literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// UnquoteString strips the quotes of a SQL string literal, resolving doubled quotes
// and backslash escapes. Values that are not quoted are returned unchanged.
//
// Examples:
//
//	UnquoteString(`'it''s'`) // it's
//	UnquoteString(`'it\'s'`) // it's
//	UnquoteString(`'a\nb'`) // a, newline, b
func UnquoteString(s string) string {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return s
	}

	inner := s[1 : len(s)-1]
	if !strings.ContainsAny(inner, `'\`) {
		return inner
	}

	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '\'' && i+1 < len(inner) && inner[i+1] == '\'':
			i++
		case c == '\\' && i+1 < len(inner):
			i++
			switch inner[i] {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			case '0':
				c = 0
			default:
				c = inner[i]
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
