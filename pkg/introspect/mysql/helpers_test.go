package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckClause(t *testing.T) {
	require.Equal(t, "salary >= 0", checkClause("(`salary` >= 0)"))
	require.Equal(t, "length(name) > 1", checkClause("(length(`name`) > 1)"))
}

func TestFilter(t *testing.T) {
	r := &reader{database: "app"}
	where, args := r.filter("TABLE_SCHEMA")
	require.Equal(t, "TABLE_SCHEMA = ?", where)
	require.Equal(t, []any{"app"}, args)

	r = &reader{}
	where, args = r.filter("s.TABLE_SCHEMA")
	require.Equal(t, "s.TABLE_SCHEMA NOT IN ('mysql', 'information_schema', 'performance_schema', 'sys')", where)
	require.Nil(t, args)
}

func TestColumnDefault(t *testing.T) {
	tests := []struct {
		def      string
		extra    string
		expected string
	}{
		{def: "0", expected: "0"},
		{def: "-1.5", expected: "-1.5"},
		{def: "active", expected: "'active'"},
		{def: "it's", expected: "'it''s'"},
		{def: "'quoted'", expected: "'quoted'"},
		{def: "CURRENT_TIMESTAMP", extra: "DEFAULT_GENERATED", expected: "CURRENT_TIMESTAMP"},
		{def: "CURRENT_TIMESTAMP(3)", expected: "CURRENT_TIMESTAMP(3)"},
		{def: "(uuid())", extra: "DEFAULT_GENERATED", expected: "(uuid())"},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			require.Equal(t, tt.expected, columnDefault(tt.def, tt.extra))
		})
	}
}
