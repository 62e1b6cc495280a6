package utils

import (
	"strings"
)

// SQLBuilder provides a fluent interface for building DDL statements. Names are
// double quoted and literals single quoted.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Create("SCHEMA").
//		Name("hr").
//		Raw("AUTHORIZATION").
//		Name("admin").
//		String()
//	// Output: CREATE SCHEMA "hr" AUTHORIZATION "admin";
type SQLBuilder struct {
	parts []string
}

func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("TABLE")              // CREATE TABLE
//	builder.Create("MATERIALIZED VIEW")  // CREATE MATERIALIZED VIEW
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// Name adds a quoted object name.
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, QuoteIdentifier(name))
	}
	return b
}

// QualifiedName adds a schema qualified name. An empty schema adds just the name.
//
// Example:
//
//	builder.QualifiedName("hr", "EMP")  // "hr"."EMP"
//	builder.QualifiedName("", "EMP")    // "EMP"
func (b *SQLBuilder) QualifiedName(schema, name string) *SQLBuilder {
	if q := QuoteQualified(schema, name); q != "" {
		b.parts = append(b.parts, q)
	}
	return b
}

// List adds a parenthesized, comma separated list.
//
// Example:
//
//	builder.List([]string{"a", "b"})  // (a, b)
func (b *SQLBuilder) List(items []string) *SQLBuilder {
	b.parts = append(b.parts, "("+strings.Join(items, ", ")+")")
	return b
}

// Engine adds an ENGINE clause with the specified engine name.
func (b *SQLBuilder) Engine(engine string) *SQLBuilder {
	if engine != "" {
		b.parts = append(b.parts, "ENGINE", "=", engine)
	}
	return b
}

// Escaped adds a quoted SQL string value.
func (b *SQLBuilder) Escaped(value string) *SQLBuilder {
	b.parts = append(b.parts, QuoteString(value))
	return b
}

// As adds an AS clause, used for views and user types.
//
// Example:
//
//	builder.As("SELECT 1")  // AS SELECT 1
func (b *SQLBuilder) As(expression string) *SQLBuilder {
	if expression != "" {
		b.parts = append(b.parts, "AS", expression)
	}
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for complex constructs
// that don't fit the fluent pattern.
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement with a semicolon.
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}

// StringWithoutSemicolon builds and returns the statement without a semicolon.
// Useful for building parts of larger statements.
func (b *SQLBuilder) StringWithoutSemicolon() string {
	return strings.Join(b.parts, " ")
}
