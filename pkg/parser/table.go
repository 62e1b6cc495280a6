package parser

import (
	"strings"
)

type (
	// CreateTableStmt represents a CREATE TABLE statement.
	//   CREATE [OR REPLACE] [TEMPORARY] TABLE [IF NOT EXISTS] [schema.]name (
	//     element, ...
	//   ) [table options]
	CreateTableStmt struct {
		Create      string          `parser:"'CREATE'"`
		OrReplace   bool            `parser:"@('OR' 'REPLACE')?"`
		Temporary   bool            `parser:"@('TEMPORARY' | 'TEMP')?"`
		Table       string          `parser:"'TABLE'"`
		IfNotExists bool            `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        QualifiedName   `parser:"@@"`
		Elements    []*TableElement `parser:"'(' @@ (',' @@)* ')'"`
		Options     []*TableOption  `parser:"@@*"`
	}

	// TableElement is a column, a table constraint or an inline index.
	TableElement struct {
		Constraint *TableConstraint `parser:"@@"`
		Index      *InlineIndex     `parser:"| @@"`
		Column     *ColumnDef       `parser:"| @@"`
	}

	// ColumnDef represents a column definition.
	//   name type [option ...]
	ColumnDef struct {
		Name    string          `parser:"@(Ident | QuotedIdent | BacktickIdent)"`
		Type    *DataType       `parser:"@@"`
		Options []*ColumnOption `parser:"@@*"`
	}

	// DataType is a possibly multi-word type name with optional arguments:
	// integer, varchar(100), double precision, numeric(10, 2), timestamp(3) with time
	// zone, text[], Nullable(String), int unsigned.
	DataType struct {
		Words    []string `parser:"@(Ident | QuotedIdent) @('PRECISION' | 'VARYING')?"`
		Args     *Group   `parser:"@@?"`
		Zone     []string `parser:"(@('WITH' | 'WITHOUT') @'TIME' @'ZONE')?"`
		Unsigned bool     `parser:"@'UNSIGNED'?"`
		Array    bool     `parser:"@('[' ']')?"`
	}

	// ColumnOption is a single column constraint or attribute.
	ColumnOption struct {
		Constraint    *string       `parser:"'CONSTRAINT' @(Ident | QuotedIdent | BacktickIdent)"`
		NotNull       bool          `parser:"| @('NOT' 'NULL')"`
		Null          bool          `parser:"| @'NULL'"`
		Default       *DefaultValue `parser:"| 'DEFAULT' @@"`
		PrimaryKey    bool          `parser:"| @('PRIMARY' 'KEY')"`
		Unique        bool          `parser:"| @'UNIQUE' 'KEY'?"`
		AutoIncrement bool          `parser:"| @('AUTO_INCREMENT' | 'AUTOINCREMENT')"`
		Identity      bool          `parser:"| @('GENERATED' ('ALWAYS' | 'BY' 'DEFAULT') 'AS' 'IDENTITY')"`
		References    *Reference    `parser:"| 'REFERENCES' @@"`
		Check         *Group        `parser:"| 'CHECK' @@"`
		Comment       *string       `parser:"| 'COMMENT' @String"`
		Collate       *string       `parser:"| 'COLLATE' @(Ident | QuotedIdent | String)"`
		Charset       *string       `parser:"| ('CHARACTER' 'SET' | 'CHARSET') @(Ident | String)"`
		OnUpdate      *Call         `parser:"| 'ON' 'UPDATE' @@"`
	}

	// DefaultValue is a column default: a literal, a function call or a
	// parenthesized expression, optionally followed by a cast.
	DefaultValue struct {
		Value *DefaultTerm `parser:"@@"`
		Cast  *DataType    `parser:"('::' @@)?"`
	}

	DefaultTerm struct {
		Group   *Group  `parser:"@@"`
		Literal *string `parser:"| @(('-' | '+')? Number | String | 'NULL' | 'TRUE' | 'FALSE')"`
		Call    *Call   `parser:"| @@"`
	}

	// Call is a function call or a bare keyword such as CURRENT_TIMESTAMP.
	Call struct {
		Name string `parser:"@Ident"`
		Args *Group `parser:"@@?"`
	}

	// Reference is the target of a foreign key.
	//   [schema.]table [(columns)] [ON DELETE action] [ON UPDATE action]
	Reference struct {
		Table   QualifiedName `parser:"@@"`
		Columns *ColumnNames  `parser:"@@?"`
		Match   *string       `parser:"('MATCH' @('FULL' | 'PARTIAL' | 'SIMPLE'))?"`
		Actions []*RefAction  `parser:"@@*"`
	}

	RefAction struct {
		Event  string   `parser:"'ON' @('DELETE' | 'UPDATE')"`
		Action []string `parser:"@('CASCADE' | 'RESTRICT' | 'NO' 'ACTION' | 'SET' ('NULL' | 'DEFAULT'))"`
	}

	// TableConstraint represents a table level constraint.
	//   [CONSTRAINT name] PRIMARY KEY (cols) | UNIQUE (cols) | FOREIGN KEY (cols) REFERENCES ... | CHECK (expr)
	TableConstraint struct {
		Name          *string         `parser:"('CONSTRAINT' @(Ident | QuotedIdent | BacktickIdent))?"`
		Body          *ConstraintBody `parser:"@@"`
		NotDeferrable bool            `parser:"@('NOT' 'DEFERRABLE')?"`
		Deferrable    bool            `parser:"@'DEFERRABLE'?"`
		Initially     *string         `parser:"('INITIALLY' @('DEFERRED' | 'IMMEDIATE'))?"`
	}

	ConstraintBody struct {
		PrimaryKey *ColumnNames `parser:"'PRIMARY' 'KEY' @@"`
		Unique     *ColumnNames `parser:"| 'UNIQUE' ('KEY' | 'INDEX')? @@"`
		ForeignKey *ForeignKey  `parser:"| 'FOREIGN' 'KEY' @@"`
		Check      *Group       `parser:"| 'CHECK' @@"`
	}

	ForeignKey struct {
		Columns    *ColumnNames `parser:"@@"`
		References *Reference   `parser:"'REFERENCES' @@"`
	}

	// InlineIndex is a MySQL style index declared inside CREATE TABLE.
	//   [UNIQUE | FULLTEXT] {KEY | INDEX} name (cols)
	InlineIndex struct {
		Unique  bool         `parser:"@'UNIQUE'?"`
		Kind    *string      `parser:"@('FULLTEXT' | 'SPATIAL')?"`
		Index   string       `parser:"('KEY' | 'INDEX')"`
		Name    string       `parser:"@(Ident | QuotedIdent | BacktickIdent)"`
		Columns *ColumnNames `parser:"@@"`
	}

	// TableOption is a trailing table option. Options other than the engine and the
	// comment are skipped token by token.
	TableOption struct {
		Engine  *Engine `parser:"@@"`
		Comment *string `parser:"| 'COMMENT' '='? @String"`
		Skip    string  `parser:"| @!';'"`
	}

	Engine struct {
		Name string `parser:"'ENGINE' '='? @Ident"`
		Args *Group `parser:"@@?"`
	}
)

// String renders the type normalized: lower-cased keywords, arguments attached.
func (d *DataType) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(d.Words, " "))
	if d.Args != nil {
		b.WriteString(d.Args.String())
	}
	if len(d.Zone) > 0 {
		b.WriteString(" " + strings.ToLower(strings.Join(d.Zone, " ")))
	}
	if d.Unsigned {
		b.WriteString(" unsigned")
	}
	if d.Array {
		b.WriteString("[]")
	}
	return b.String()
}

// Name returns the type name without arguments.
func (d *DataType) Name() string {
	return strings.Join(d.Words, " ")
}

func (v *DefaultValue) String() string {
	s := v.Value.String()
	if v.Cast != nil {
		s += "::" + v.Cast.String()
	}
	return s
}

func (t *DefaultTerm) String() string {
	switch {
	case t.Group != nil:
		return t.Group.String()
	case t.Literal != nil:
		return *t.Literal
	case t.Call.Args != nil:
		return t.Call.Name + t.Call.Args.String()
	}
	return t.Call.Name
}

// Action returns the referential action for event ("DELETE" or "UPDATE").
func (r *Reference) Action(event string) string {
	for _, a := range r.Actions {
		if strings.EqualFold(a.Event, event) {
			return strings.Join(a.Action, " ")
		}
	}
	return ""
}

// Comment returns the table comment option, if any.
func (s *CreateTableStmt) Comment() *string {
	return tableComment(s.Options)
}

// Engine returns the engine name, if any.
func (s *CreateTableStmt) Engine() string {
	for _, o := range s.Options {
		if o.Engine != nil {
			return o.Engine.Name
		}
	}
	return ""
}

func tableComment(options []*TableOption) *string {
	for _, o := range options {
		if o.Comment != nil {
			return o.Comment
		}
	}
	return nil
}
