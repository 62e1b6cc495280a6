package document

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
)

// Build converts the document into a catalog graph. Enum attributes are parsed with
// the catalog lookups and duplicate names are rejected.
func (d *Document) Build() (*catalog.Catalog, error) {
	cat := catalog.New(d.Name)
	cat.Comment = d.Comment

	for _, sd := range d.Schemas {
		_, err := cat.Schemas.Add(func(s *catalog.Schema) error {
			s.Name = sd.Name
			s.Owner = sd.Owner
			s.Comment = sd.Comment
			return sd.build(s)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "schema %s", sd.Name)
		}
	}

	return cat, nil
}

func (sd SchemaDoc) build(s *catalog.Schema) error {
	for _, td := range sd.Types {
		if _, err := s.Types.Add(td.build); err != nil {
			return errors.Wrapf(err, "type %s", td.Name)
		}
	}

	for _, qd := range sd.Sequences {
		if _, err := s.Sequences.Add(qd.build); err != nil {
			return errors.Wrapf(err, "sequence %s", qd.Name)
		}
	}

	for _, td := range sd.Tables {
		if _, err := s.Tables.Add(td.build); err != nil {
			return errors.Wrapf(err, "table %s", td.Name)
		}
	}

	for _, vd := range sd.Views {
		if _, err := s.Views.Add(vd.build); err != nil {
			return errors.Wrapf(err, "view %s", vd.Name)
		}
	}

	for _, rd := range sd.Routines {
		if _, err := s.Routines.Add(rd.build); err != nil {
			return errors.Wrapf(err, "routine %s", rd.Name)
		}
	}

	return nil
}

func (td TypeDoc) build(u *catalog.UserType) error {
	category, err := catalog.ParseTypeCategory(td.Category)
	if err != nil {
		return err
	}

	u.Name = td.Name
	u.Category = category
	u.BaseType = td.BaseType
	u.Values = td.Values
	return nil
}

func (qd SequenceDoc) build(s *catalog.Sequence) error {
	s.Name = qd.Name
	s.DataType = qd.DataType
	s.Start = qd.Start
	s.Increment = qd.Increment
	s.MinValue = qd.MinValue
	s.MaxValue = qd.MaxValue
	s.Cache = qd.Cache
	s.Cycle = qd.Cycle
	return nil
}

func (td TableDoc) build(t *catalog.Table) error {
	t.Name = td.Name
	t.Comment = td.Comment
	t.Engine = td.Engine

	if err := buildColumns(t.Columns.Add, td.Columns); err != nil {
		return err
	}

	for _, cd := range td.Constraints {
		if _, err := t.Constraints.Add(cd.build); err != nil {
			return errors.Wrapf(err, "constraint %s", cd.Name)
		}
	}

	for _, id := range td.Indexes {
		_, err := t.Indexes.Add(func(i *catalog.Index) error {
			i.Name = id.Name
			i.Unique = id.Unique
			i.Method = id.Method
			i.Columns = id.Columns
			i.Where = id.Where
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "index %s", id.Name)
		}
	}

	for _, rd := range td.Triggers {
		if _, err := t.Triggers.Add(rd.build); err != nil {
			return errors.Wrapf(err, "trigger %s", rd.Name)
		}
	}

	for _, gd := range td.Grants {
		if _, err := t.Privileges.Add(gd.build); err != nil {
			return errors.Wrapf(err, "grant %s to %s", gd.Privilege, gd.Grantee)
		}
	}

	return nil
}

func buildColumns(add func(func(*catalog.Column) error) (*catalog.Column, error), docs []ColumnDoc) error {
	for _, cd := range docs {
		_, err := add(func(c *catalog.Column) error {
			c.Name = cd.Name
			c.DataType = cd.Type
			c.Length = cd.Length
			c.Precision = cd.Precision
			c.Scale = cd.Scale
			c.Nullable = cd.Nullable == nil || *cd.Nullable
			c.DefaultValue = cd.Default
			c.AutoIncrement = cd.AutoIncrement
			c.Comment = cd.Comment
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "column %s", cd.Name)
		}
	}

	return nil
}

func (cd ConstraintDoc) build(c *catalog.Constraint) error {
	typ, err := catalog.ParseConstraintType(cd.Type)
	if err != nil {
		return err
	}

	c.Name = cd.Name
	c.Type = typ
	c.Columns = cd.Columns
	c.CheckExpression = cd.Check
	c.Deferrable = cd.Deferrable

	if ref := cd.References; ref != nil {
		c.ReferencedSchema = ref.Schema
		c.ReferencedTable = ref.Table
		c.ReferencedColumns = ref.Columns
		if c.OnDelete, err = parseAction(ref.OnDelete); err != nil {
			return err
		}
		if c.OnUpdate, err = parseAction(ref.OnUpdate); err != nil {
			return err
		}
	}

	return nil
}

func parseAction(s string) (catalog.ReferentialAction, error) {
	if s == "" {
		return "", nil
	}
	return catalog.ParseReferentialAction(s)
}

func (rd TriggerDoc) build(t *catalog.Trigger) error {
	timing, err := catalog.ParseTriggerTiming(rd.Timing)
	if err != nil {
		return err
	}

	events, err := catalog.ParseTriggerEvents(rd.Events)
	if err != nil {
		return err
	}

	t.Name = rd.Name
	t.Timing = timing
	t.Events = events
	t.When = rd.When
	t.Action = rd.Action

	if rd.Orientation != "" {
		if t.Orientation, err = catalog.ParseTriggerOrientation(rd.Orientation); err != nil {
			return err
		}
	}

	return nil
}

func (gd GrantDoc) build(p *catalog.Privilege) error {
	typ, err := catalog.ParsePrivilegeType(gd.Privilege)
	if err != nil {
		return err
	}

	p.Grantee = gd.Grantee
	p.Type = typ
	p.Grantor = gd.Grantor
	p.Grantable = gd.Grantable
	return nil
}

func (vd ViewDoc) build(v *catalog.View) error {
	v.Name = vd.Name
	v.Definition = vd.Definition
	v.Materialized = vd.Materialized
	v.Comment = vd.Comment
	return buildColumns(v.Columns.Add, vd.Columns)
}

func (rd RoutineDoc) build(r *catalog.Routine) error {
	typ, err := catalog.ParseRoutineType(rd.Type)
	if err != nil {
		return err
	}

	r.Name = rd.Name
	r.SpecificName = rd.SpecificName
	r.Type = typ
	r.ReturnType = rd.Returns
	r.Language = rd.Language
	r.Deterministic = rd.Deterministic
	r.Body = rd.Body

	for i, pd := range rd.Parameters {
		_, err := r.Parameters.Add(func(p *catalog.Parameter) error {
			p.Name = pd.Name
			p.DataType = pd.Type
			p.DefaultValue = pd.Default
			if pd.Mode == "" {
				return nil
			}

			var err error
			p.Mode, err = catalog.ParseParameterMode(pd.Mode)
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "parameter %d", i+1)
		}
	}

	return nil
}
