package document

import (
	"encoding/xml"
)

type (
	// Document is the serialized form of a catalog.
	Document struct {
		XMLName xml.Name    `xml:"catalog" yaml:"-"`
		Name    string      `xml:"name,attr" yaml:"name"`
		Comment string      `xml:"comment,attr,omitempty" yaml:"comment,omitempty"`
		Schemas []SchemaDoc `xml:"schema" yaml:"schemas,omitempty"`
	}

	SchemaDoc struct {
		Name      string        `xml:"name,attr" yaml:"name"`
		Owner     string        `xml:"owner,attr,omitempty" yaml:"owner,omitempty"`
		Comment   string        `xml:"comment,attr,omitempty" yaml:"comment,omitempty"`
		Types     []TypeDoc     `xml:"type" yaml:"types,omitempty"`
		Sequences []SequenceDoc `xml:"sequence" yaml:"sequences,omitempty"`
		Tables    []TableDoc    `xml:"table" yaml:"tables,omitempty"`
		Views     []ViewDoc     `xml:"view" yaml:"views,omitempty"`
		Routines  []RoutineDoc  `xml:"routine" yaml:"routines,omitempty"`
	}

	TableDoc struct {
		Name        string          `xml:"name,attr" yaml:"name"`
		Comment     string          `xml:"comment,attr,omitempty" yaml:"comment,omitempty"`
		Engine      string          `xml:"engine,attr,omitempty" yaml:"engine,omitempty"`
		Columns     []ColumnDoc     `xml:"column" yaml:"columns,omitempty"`
		Constraints []ConstraintDoc `xml:"constraint" yaml:"constraints,omitempty"`
		Indexes     []IndexDoc      `xml:"index" yaml:"indexes,omitempty"`
		Triggers    []TriggerDoc    `xml:"trigger" yaml:"triggers,omitempty"`
		Grants      []GrantDoc      `xml:"grant" yaml:"grants,omitempty"`
	}

	ColumnDoc struct {
		Name          string  `xml:"name,attr" yaml:"name"`
		Type          string  `xml:"type,attr" yaml:"type"`
		Length        *int64  `xml:"length,attr,omitempty" yaml:"length,omitempty"`
		Precision     *int64  `xml:"precision,attr,omitempty" yaml:"precision,omitempty"`
		Scale         *int64  `xml:"scale,attr,omitempty" yaml:"scale,omitempty"`
		Nullable      *bool   `xml:"nullable,attr,omitempty" yaml:"nullable,omitempty"`
		Default       *string `xml:"default,attr,omitempty" yaml:"default,omitempty"`
		AutoIncrement bool    `xml:"autoIncrement,attr,omitempty" yaml:"autoIncrement,omitempty"`
		Comment       string  `xml:"comment,attr,omitempty" yaml:"comment,omitempty"`
	}

	ConstraintDoc struct {
		Name       string        `xml:"name,attr" yaml:"name"`
		Type       string        `xml:"type,attr" yaml:"type"`
		Deferrable bool          `xml:"deferrable,attr,omitempty" yaml:"deferrable,omitempty"`
		Columns    []string      `xml:"column" yaml:"columns,omitempty"`
		References *ReferenceDoc `xml:"references,omitempty" yaml:"references,omitempty"`
		Check      string        `xml:"check,omitempty" yaml:"check,omitempty"`
	}

	ReferenceDoc struct {
		Schema   string   `xml:"schema,attr,omitempty" yaml:"schema,omitempty"`
		Table    string   `xml:"table,attr" yaml:"table"`
		OnDelete string   `xml:"onDelete,attr,omitempty" yaml:"onDelete,omitempty"`
		OnUpdate string   `xml:"onUpdate,attr,omitempty" yaml:"onUpdate,omitempty"`
		Columns  []string `xml:"column" yaml:"columns,omitempty"`
	}

	IndexDoc struct {
		Name    string   `xml:"name,attr" yaml:"name"`
		Unique  bool     `xml:"unique,attr,omitempty" yaml:"unique,omitempty"`
		Method  string   `xml:"method,attr,omitempty" yaml:"method,omitempty"`
		Columns []string `xml:"column" yaml:"columns,omitempty"`
		Where   string   `xml:"where,omitempty" yaml:"where,omitempty"`
	}

	TriggerDoc struct {
		Name        string `xml:"name,attr" yaml:"name"`
		Timing      string `xml:"timing,attr" yaml:"timing"`
		Events      string `xml:"events,attr" yaml:"events"`
		Orientation string `xml:"orientation,attr,omitempty" yaml:"orientation,omitempty"`
		When        string `xml:"when,omitempty" yaml:"when,omitempty"`
		Action      string `xml:"action" yaml:"action"`
	}

	GrantDoc struct {
		Grantee   string `xml:"grantee,attr" yaml:"grantee"`
		Privilege string `xml:"privilege,attr" yaml:"privilege"`
		Grantor   string `xml:"grantor,attr,omitempty" yaml:"grantor,omitempty"`
		Grantable bool   `xml:"grantable,attr,omitempty" yaml:"grantable,omitempty"`
	}

	SequenceDoc struct {
		Name      string `xml:"name,attr" yaml:"name"`
		DataType  string `xml:"type,attr,omitempty" yaml:"type,omitempty"`
		Start     *int64 `xml:"start,attr,omitempty" yaml:"start,omitempty"`
		Increment *int64 `xml:"increment,attr,omitempty" yaml:"increment,omitempty"`
		MinValue  *int64 `xml:"min,attr,omitempty" yaml:"min,omitempty"`
		MaxValue  *int64 `xml:"max,attr,omitempty" yaml:"max,omitempty"`
		Cache     *int64 `xml:"cache,attr,omitempty" yaml:"cache,omitempty"`
		Cycle     bool   `xml:"cycle,attr,omitempty" yaml:"cycle,omitempty"`
	}

	ViewDoc struct {
		Name         string      `xml:"name,attr" yaml:"name"`
		Materialized bool        `xml:"materialized,attr,omitempty" yaml:"materialized,omitempty"`
		Comment      string      `xml:"comment,attr,omitempty" yaml:"comment,omitempty"`
		Columns      []ColumnDoc `xml:"column" yaml:"columns,omitempty"`
		Definition   string      `xml:"definition" yaml:"definition"`
	}

	RoutineDoc struct {
		Name          string         `xml:"name,attr" yaml:"name"`
		SpecificName  string         `xml:"specificName,attr,omitempty" yaml:"specificName,omitempty"`
		Type          string         `xml:"type,attr" yaml:"type"`
		Returns       string         `xml:"returns,attr,omitempty" yaml:"returns,omitempty"`
		Language      string         `xml:"language,attr,omitempty" yaml:"language,omitempty"`
		Deterministic bool           `xml:"deterministic,attr,omitempty" yaml:"deterministic,omitempty"`
		Parameters    []ParameterDoc `xml:"parameter" yaml:"parameters,omitempty"`
		Body          string         `xml:"body" yaml:"body"`
	}

	ParameterDoc struct {
		Name    string  `xml:"name,attr,omitempty" yaml:"name,omitempty"`
		Type    string  `xml:"type,attr" yaml:"type"`
		Mode    string  `xml:"mode,attr,omitempty" yaml:"mode,omitempty"`
		Default *string `xml:"default,attr,omitempty" yaml:"default,omitempty"`
	}

	TypeDoc struct {
		Name     string   `xml:"name,attr" yaml:"name"`
		Category string   `xml:"category,attr" yaml:"category"`
		BaseType string   `xml:"base,attr,omitempty" yaml:"base,omitempty"`
		Values   []string `xml:"value" yaml:"values,omitempty"`
	}
)
