package utils_test

import (
	"testing"

	"github.com/pseudomuto/schemata/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple identifier", input: "table", expected: `"table"`},
		{name: "reserved word", input: "order", expected: `"order"`},
		{name: "identifier with spaces", input: "my table", expected: `"my table"`},
		{name: "embedded quote", input: `say "hi"`, expected: `"say ""hi"""`},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.QuoteIdentifier(tt.input))
			require.Equal(t, tt.input, utils.Unquote(tt.expected))
		})
	}
}

func TestQuoteQualified(t *testing.T) {
	require.Equal(t, `"hr"."EMP"`, utils.QuoteQualified("hr", "EMP"))
	require.Equal(t, `"EMP"`, utils.QuoteQualified("", "EMP"))
	require.Equal(t, `"db"."hr"."EMP"`, utils.QuoteQualified("db", "hr", "EMP"))
	require.Empty(t, utils.QuoteQualified())
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		quoted   bool
	}{
		{name: "double quoted", input: `"my table"`, expected: "my table", quoted: true},
		{name: "backticked", input: "`a``b`", expected: "a`b", quoted: true},
		{name: "bracketed", input: "[dbo]", expected: "dbo", quoted: true},
		{name: "plain", input: "plain", expected: "plain"},
		{name: "mismatched", input: "\"abc`", expected: "\"abc`"},
		{name: "single character", input: `"`, expected: `"`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.quoted, utils.IsQuoted(tt.input))
			require.Equal(t, tt.expected, utils.Unquote(tt.input))
		})
	}
}

func TestQuoteString(t *testing.T) {
	require.Equal(t, "'plain'", utils.QuoteString("plain"))
	require.Equal(t, "'it''s'", utils.QuoteString("it's"))
	require.Equal(t, "''", utils.QuoteString(""))
}

func TestUnquoteString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "'abc'", expected: "abc"},
		{name: "doubled quote", input: "'it''s'", expected: "it's"},
		{name: "backslash quote", input: `'it\'s'`, expected: "it's"},
		{name: "newline escape", input: `'a\nb'`, expected: "a\nb"},
		{name: "escaped backslash", input: `'a\\b'`, expected: `a\b`},
		{name: "empty literal", input: "''", expected: ""},
		{name: "not quoted", input: "abc", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.UnquoteString(tt.input))
		})
	}
}
