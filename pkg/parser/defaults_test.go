package parser_test

import (
	"testing"

	"github.com/pseudomuto/schemata/pkg/catalog"
	. "github.com/pseudomuto/schemata/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestSetColumnType(t *testing.T) {
	tests := []struct {
		typ       string
		dataType  string
		length    *int64
		precision *int64
		scale     *int64
	}{
		{typ: "integer", dataType: "integer"},
		{typ: "VARCHAR(100)", dataType: "VARCHAR", length: ptr(100)},
		{typ: "character varying(20)", dataType: "character varying", length: ptr(20)},
		{typ: "numeric(10,2)", dataType: "numeric", precision: ptr(10), scale: ptr(2)},
		{typ: "Decimal(18, 4)", dataType: "Decimal", precision: ptr(18), scale: ptr(4)},
		{typ: "int(11) unsigned", dataType: "int unsigned", length: ptr(11)},
		{typ: "timestamp(3) with time zone", dataType: "timestamp with time zone", length: ptr(3)},
		{typ: "LowCardinality(String)", dataType: "LowCardinality(String)"},
		{typ: "enum('a','b')", dataType: "enum('a', 'b')"},
		{typ: "  weird type ~ ", dataType: "weird type ~"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			col := new(catalog.Column)
			require.NoError(t, SetColumnType(col, tt.typ))
			require.Equal(t, tt.dataType, col.DataType)
			require.Equal(t, tt.length, col.Length)
			require.Equal(t, tt.precision, col.Precision)
			require.Equal(t, tt.scale, col.Scale)
		})
	}
}

func TestSetColumnTypeSerial(t *testing.T) {
	col := &catalog.Column{Nullable: true}
	require.NoError(t, SetColumnType(col, "bigserial"))
	require.Equal(t, "bigint", col.DataType)
	require.True(t, col.AutoIncrement)
	require.False(t, col.Nullable)
}

func TestConstraintName(t *testing.T) {
	require.Equal(t, "emp_pkey", ConstraintName("emp", "pkey"))
	require.Equal(t, "emp_dept_id_fkey", ConstraintName("emp", "fkey", "dept_id"))
	require.Equal(t, "emp_a_b_key", ConstraintName("emp", "key", "a", "b"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: " SELECT emp.id,\n    emp.name\n   FROM hr.emp;", expected: "SELECT emp.id, emp.name FROM hr.emp"},
		{input: "(salary > (0)::numeric)", expected: "(salary > (0)::numeric)"},
		{input: "active = 1 -- only live rows", expected: "active = 1"},
		{input: "count( * )", expected: "count(*)"},
		{input: "  §odd  ", expected: "§odd"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}
