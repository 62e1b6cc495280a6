package parser

type (
	// CreateSequenceStmt represents a CREATE SEQUENCE statement.
	//   CREATE SEQUENCE [IF NOT EXISTS] [schema.]name [AS type]
	//     [INCREMENT [BY] n] [START [WITH] n] [MINVALUE n | NO MINVALUE]
	//     [MAXVALUE n | NO MAXVALUE] [CACHE n] [[NO] CYCLE] [OWNED BY col]
	CreateSequenceStmt struct {
		Create      string            `parser:"'CREATE'"`
		Temporary   bool              `parser:"@('TEMPORARY' | 'TEMP')?"`
		Sequence    string            `parser:"'SEQUENCE'"`
		IfNotExists bool              `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name        QualifiedName     `parser:"@@"`
		Options     []*SequenceOption `parser:"@@*"`
	}

	SequenceOption struct {
		DataType  *DataType      `parser:"'AS' @@"`
		Increment *string        `parser:"| 'INCREMENT' 'BY'? @(('-' | '+')? Number)"`
		Start     *string        `parser:"| 'START' 'WITH'? @(('-' | '+')? Number)"`
		MinValue  *string        `parser:"| 'MINVALUE' @(('-' | '+')? Number)"`
		MaxValue  *string        `parser:"| 'MAXVALUE' @(('-' | '+')? Number)"`
		Cache     *string        `parser:"| 'CACHE' @Number"`
		NoCycle   bool           `parser:"| @('NO' 'CYCLE')"`
		No        *string        `parser:"| 'NO' @('MINVALUE' | 'MAXVALUE')"`
		Cycle     bool           `parser:"| @'CYCLE'"`
		OwnedBy   *QualifiedName `parser:"| 'OWNED' 'BY' @@"`
	}
)
