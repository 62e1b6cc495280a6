package parser

type (
	// CreateTypeStmt represents a CREATE TYPE statement for enums and composites.
	//   CREATE TYPE [schema.]name AS ENUM ('a', ...)
	//   CREATE TYPE [schema.]name AS (attribute type, ...)
	CreateTypeStmt struct {
		Create string        `parser:"'CREATE'"`
		Type   string        `parser:"'TYPE'"`
		Name   QualifiedName `parser:"@@"`
		Body   *TypeBody     `parser:"'AS' @@"`
	}

	TypeBody struct {
		Enum      []string     `parser:"'ENUM' '(' (@String (',' @String)*)? ')'"`
		Composite []*Attribute `parser:"| '(' @@ (',' @@)* ')'"`
	}

	Attribute struct {
		Name string    `parser:"@(Ident | QuotedIdent)"`
		Type *DataType `parser:"@@"`
	}

	// CreateDomainStmt represents a CREATE DOMAIN statement. Constraints after the
	// base type are skipped.
	//   CREATE DOMAIN [schema.]name [AS] type [constraints]
	CreateDomainStmt struct {
		Create string        `parser:"'CREATE'"`
		Domain string        `parser:"'DOMAIN'"`
		Name   QualifiedName `parser:"@@"`
		Type   *DataType     `parser:"'AS'? @@"`
		Rest   []string      `parser:"@!';'*"`
	}
)
