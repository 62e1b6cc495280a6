package parser_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/schemata/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sql := `CREATE SCHEMA hr;
create table hr.emp (
    id integer not null,
    name varchar(100)
) engine = InnoDB comment = 'Employees';`

	result, err := Parse(strings.NewReader(sql))
	require.NoError(t, err)
	require.Len(t, result.Statements, 2)

	require.NotNil(t, result.Statements[0].CreateSchema)
	require.Equal(t, "hr", result.Statements[0].CreateSchema.Name)

	tbl := result.Statements[1].CreateTable
	require.NotNil(t, tbl)
	require.Equal(t, "emp", tbl.Name.Object())
	require.Equal(t, "hr", tbl.Name.Schema(DefaultSchema))
	require.Len(t, tbl.Elements, 2)
	require.Equal(t, "InnoDB", tbl.Engine())
	require.Equal(t, "'Employees'", *tbl.Comment())

	id := tbl.Elements[0].Column
	require.Equal(t, "id", id.Name)
	require.Equal(t, "integer", id.Type.String())
	require.True(t, id.Options[0].NotNull)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{name: "unknown statement", sql: "DROP TABLE emp;"},
		{name: "missing column list", sql: "CREATE TABLE emp;"},
		{name: "unbalanced parens", sql: "CREATE TABLE emp (id integer CHECK ((id > 0));"},
		{name: "bad reference action", sql: "CREATE TABLE emp (d integer REFERENCES dept ON DELETE EXPLODE);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.sql)
			require.Error(t, err)
		})
	}
}

func TestDataTypes(t *testing.T) {
	tests := []struct {
		sql      string
		expected string
	}{
		{sql: "integer", expected: "integer"},
		{sql: "varchar(100)", expected: "varchar(100)"},
		{sql: "numeric(10,2)", expected: "numeric(10, 2)"},
		{sql: "double precision", expected: "double precision"},
		{sql: "character varying(20)", expected: "character varying(20)"},
		{sql: "timestamp(3) WITH TIME ZONE", expected: "timestamp(3) with time zone"},
		{sql: "int unsigned", expected: "int unsigned"},
		{sql: "text[]", expected: "text[]"},
		{sql: "Nullable(String)", expected: "Nullable(String)"},
		{sql: "DateTime64(3, 'UTC')", expected: "DateTime64(3, 'UTC')"},
		{sql: `"my type"`, expected: `"my type"`},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			result, err := ParseString("CREATE TABLE t (c " + tt.sql + ");")
			require.NoError(t, err)
			require.Equal(t, tt.expected, result.Statements[0].CreateTable.Elements[0].Column.Type.String())
		})
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		sql      string
		expected string
	}{
		{sql: "0", expected: "0"},
		{sql: "-1.5", expected: "-1.5"},
		{sql: "'n/a'", expected: "'n/a'"},
		{sql: "NULL", expected: "NULL"},
		{sql: "now()", expected: "now()"},
		{sql: "CURRENT_TIMESTAMP", expected: "CURRENT_TIMESTAMP"},
		{sql: "(1 + 2)", expected: "(1 + 2)"},
		{sql: "'x'::character varying", expected: "'x'::character varying"},
		{sql: "nextval('emp_seq'::regclass)", expected: "nextval('emp_seq'::regclass)"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			result, err := ParseString("CREATE TABLE t (c integer DEFAULT " + tt.sql + " NOT NULL);")
			require.NoError(t, err)

			col := result.Statements[0].CreateTable.Elements[0].Column
			require.Len(t, col.Options, 2)
			require.Equal(t, tt.expected, col.Options[0].Default.String())
			require.True(t, col.Options[1].NotNull)
		})
	}
}

func TestQuotedIdentifiers(t *testing.T) {
	result, err := ParseString("CREATE TABLE \"Hr\".`order` (\"Select\" integer);")
	require.NoError(t, err)

	tbl := result.Statements[0].CreateTable
	require.Equal(t, "Hr", tbl.Name.Schema(""))
	require.Equal(t, "order", tbl.Name.Object())
	require.Equal(t, `"Hr".`+"`order`", tbl.Name.String())
}

func TestSkipsUnknownTableOptions(t *testing.T) {
	result, err := ParseString(`
		CREATE TABLE events (id UInt64, name String)
		ENGINE = MergeTree() ORDER BY (id, name) SETTINGS index_granularity = 8192 COMMENT 'events';
		CREATE TABLE t (id int) DEFAULT CHARSET=utf8mb4;
	`)
	require.NoError(t, err)
	require.Len(t, result.Statements, 2)

	tbl := result.Statements[0].CreateTable
	require.Equal(t, "MergeTree", tbl.Engine())
	require.Equal(t, "'events'", *tbl.Comment())
}

func TestCreateView(t *testing.T) {
	result, err := ParseString(`
		CREATE OR REPLACE MATERIALIZED VIEW hr.emp_v AS
		SELECT e.id, count(*) AS n
		  FROM hr.emp e
		 WHERE e.name <> 'x'
		 GROUP BY e.id;
	`)
	require.NoError(t, err)

	v := result.Statements[0].CreateView
	require.True(t, v.OrReplace)
	require.True(t, v.Materialized)
	require.Equal(t, "SELECT e.id, count(*) AS n FROM hr.emp e WHERE e.name <> 'x' GROUP BY e.id", v.Definition())
}

func TestMultipleSemicolons(t *testing.T) {
	result, err := ParseString(";; CREATE SCHEMA a;; CREATE SCHEMA b")
	require.NoError(t, err)
	require.Len(t, result.Statements, 2)
}
