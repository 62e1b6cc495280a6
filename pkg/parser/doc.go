// Package parser reads a portable subset of SQL DDL into a schema catalog.
//
// The grammar is built with github.com/alecthomas/participle/v2 and covers the
// statements needed to describe a schema:
//
//	CREATE SCHEMA [IF NOT EXISTS] name [AUTHORIZATION owner];
//	CREATE [OR REPLACE] [TEMPORARY] TABLE [IF NOT EXISTS] [schema.]name (
//	    column type [NOT NULL | NULL | DEFAULT value | PRIMARY KEY | UNIQUE |
//	                 AUTO_INCREMENT | REFERENCES t (c) | CHECK (expr) | COMMENT 'text']...,
//	    [CONSTRAINT name] PRIMARY KEY (cols) | UNIQUE (cols) |
//	                      FOREIGN KEY (cols) REFERENCES t (cols) [ON DELETE a] [ON UPDATE a] |
//	                      CHECK (expr),
//	    {KEY | INDEX} name (cols)
//	) [ENGINE = name] [COMMENT 'text'];
//	CREATE [OR REPLACE] [MATERIALIZED] VIEW [schema.]name [(cols)] AS query;
//	CREATE SEQUENCE [schema.]name [AS type] [INCREMENT BY n] [START WITH n] ...;
//	CREATE [UNIQUE] INDEX name ON [schema.]table [USING method] (cols) [WHERE expr];
//	CREATE TYPE [schema.]name AS ENUM ('a', 'b') | AS (attr type, ...);
//	CREATE DOMAIN [schema.]name [AS] type ...;
//	COMMENT ON {SCHEMA | TABLE | VIEW | COLUMN} name IS 'text';
//
// Keywords are case-insensitive. Identifiers keep their case and may be quoted
// with double quotes or backticks. Every statement ends with a semicolon.
//
// Basic usage:
//
//	sql, err := parser.ParseString(ddl)
//	if err != nil {
//		return err
//	}
//
//	cat := catalog.New("main")
//	if err := sql.Load(cat, parser.DefaultSchema); err != nil {
//		return err
//	}
package parser
