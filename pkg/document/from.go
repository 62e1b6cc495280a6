package document

import (
	"strings"

	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/object"
)

// FromCatalog converts a catalog graph to its document form. Elements keep their
// collection order.
func FromCatalog(cat *catalog.Catalog) *Document {
	doc := &Document{Name: cat.Name, Comment: cat.Comment}
	for _, s := range cat.Schemas.All() {
		doc.Schemas = append(doc.Schemas, fromSchema(s))
	}
	return doc
}

func fromSchema(s *catalog.Schema) SchemaDoc {
	sd := SchemaDoc{Name: s.Name, Owner: s.Owner, Comment: s.Comment}

	for _, u := range s.Types.All() {
		sd.Types = append(sd.Types, TypeDoc{
			Name:     u.Name,
			Category: string(u.Category),
			BaseType: u.BaseType,
			Values:   u.Values,
		})
	}

	for _, q := range s.Sequences.All() {
		sd.Sequences = append(sd.Sequences, SequenceDoc{
			Name:      q.Name,
			DataType:  q.DataType,
			Start:     q.Start,
			Increment: q.Increment,
			MinValue:  q.MinValue,
			MaxValue:  q.MaxValue,
			Cache:     q.Cache,
			Cycle:     q.Cycle,
		})
	}

	for _, t := range s.Tables.All() {
		sd.Tables = append(sd.Tables, fromTable(t))
	}

	for _, v := range s.Views.All() {
		sd.Views = append(sd.Views, ViewDoc{
			Name:         v.Name,
			Materialized: v.Materialized,
			Comment:      v.Comment,
			Columns:      fromColumns(v.Columns),
			Definition:   v.Definition,
		})
	}

	for _, r := range s.Routines.All() {
		sd.Routines = append(sd.Routines, fromRoutine(r))
	}

	return sd
}

func fromTable(t *catalog.Table) TableDoc {
	td := TableDoc{
		Name:    t.Name,
		Comment: t.Comment,
		Engine:  t.Engine,
		Columns: fromColumns(t.Columns),
	}

	for _, c := range t.Constraints.All() {
		cd := ConstraintDoc{
			Name:       c.Name,
			Type:       string(c.Type),
			Deferrable: c.Deferrable,
			Columns:    c.Columns,
			Check:      c.CheckExpression,
		}
		if c.ReferencedTable != "" {
			cd.References = &ReferenceDoc{
				Schema:   c.ReferencedSchema,
				Table:    c.ReferencedTable,
				OnDelete: string(c.OnDelete),
				OnUpdate: string(c.OnUpdate),
				Columns:  c.ReferencedColumns,
			}
		}
		td.Constraints = append(td.Constraints, cd)
	}

	for _, i := range t.Indexes.All() {
		td.Indexes = append(td.Indexes, IndexDoc{
			Name:    i.Name,
			Unique:  i.Unique,
			Method:  i.Method,
			Columns: i.Columns,
			Where:   i.Where,
		})
	}

	for _, r := range t.Triggers.All() {
		events := make([]string, len(r.Events))
		for i, e := range r.Events {
			events[i] = string(e)
		}

		td.Triggers = append(td.Triggers, TriggerDoc{
			Name:        r.Name,
			Timing:      string(r.Timing),
			Events:      strings.Join(events, ","),
			Orientation: string(r.Orientation),
			When:        r.When,
			Action:      r.Action,
		})
	}

	for _, p := range t.Privileges.All() {
		td.Grants = append(td.Grants, GrantDoc{
			Grantee:   p.Grantee,
			Privilege: string(p.Type),
			Grantor:   p.Grantor,
			Grantable: p.Grantable,
		})
	}

	return td
}

func fromColumns(cols *object.List[*catalog.Column]) []ColumnDoc {
	var out []ColumnDoc
	for _, c := range cols.All() {
		cd := ColumnDoc{
			Name:          c.Name,
			Type:          c.DataType,
			Length:        c.Length,
			Precision:     c.Precision,
			Scale:         c.Scale,
			Default:       c.DefaultValue,
			AutoIncrement: c.AutoIncrement,
			Comment:       c.Comment,
		}
		if !c.Nullable {
			notNull := false
			cd.Nullable = &notNull
		}
		out = append(out, cd)
	}
	return out
}

func fromRoutine(r *catalog.Routine) RoutineDoc {
	rd := RoutineDoc{
		Name:          r.Name,
		SpecificName:  r.SpecificName,
		Type:          string(r.Type),
		Returns:       r.ReturnType,
		Language:      r.Language,
		Deterministic: r.Deterministic,
		Body:          r.Body,
	}

	for _, p := range r.Parameters.All() {
		rd.Parameters = append(rd.Parameters, ParameterDoc{
			Name:    p.Name,
			Type:    p.DataType,
			Mode:    string(p.Mode),
			Default: p.DefaultValue,
		})
	}

	return rd
}
