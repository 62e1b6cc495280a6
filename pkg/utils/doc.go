// Package utils provides small helpers shared by the parser, the document writer and
// the introspection loaders.
//
// # Identifier Utilities (identifier.go)
//
// SQL identifiers and string literals are quoted and unquoted consistently:
//
//	utils.QuoteIdentifier("order")        // "order"
//	utils.QuoteIdentifier(`say "hi"`)     // "say ""hi"""
//	utils.Unquote(`"my table"`)           // my table
//	utils.QuoteString("it's")             // 'it''s'
//	utils.UnquoteString(`'it\'s'`)        // it's
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles DDL statements from parts:
//
//	sql := utils.NewSQLBuilder().
//		Create("TABLE").
//		QualifiedName("hr", "EMP").
//		List([]string{"ID integer NOT NULL"}).
//		String()
//	// Output: CREATE TABLE "hr"."EMP" (ID integer NOT NULL);
//
// # Value Utilities (validation.go)
//
// IsNumericValue and IsIntegerValue classify literal tokens, for example the arguments
// of a column type such as varchar(100) or numeric(10, 2), or a column default
// reported without quotes.
package utils
