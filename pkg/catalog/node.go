package catalog

import (
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/object"
)

var (
	_ object.Node = (*Catalog)(nil)
	_ object.Node = (*Schema)(nil)
	_ object.Node = (*Table)(nil)
	_ object.Node = (*Column)(nil)
	_ object.Node = (*Constraint)(nil)
	_ object.Node = (*Index)(nil)
	_ object.Node = (*Trigger)(nil)
	_ object.Node = (*Privilege)(nil)
	_ object.Node = (*Sequence)(nil)
	_ object.Node = (*View)(nil)
	_ object.Node = (*Routine)(nil)
	_ object.Node = (*Parameter)(nil)
	_ object.Node = (*UserType)(nil)
)

func (c *Catalog) Like(other object.Object) bool { return object.Like(c, other, nil) }
func (c *Catalog) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(c, other, h)
}
func (c *Catalog) Diff(other object.Object) *object.Difference { return object.Compare(c, other, nil) }
func (c *Catalog) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(c, other, h)
}
func (c *Catalog) ToMap() *equals.PropertyMap       { return object.ToMap(c) }
func (c *Catalog) ApplyAll(fn object.Visitor) error { return object.ApplyAll(c, fn) }

func (s *Schema) Like(other object.Object) bool { return object.Like(s, other, nil) }
func (s *Schema) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(s, other, h)
}
func (s *Schema) Diff(other object.Object) *object.Difference { return object.Compare(s, other, nil) }
func (s *Schema) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(s, other, h)
}
func (s *Schema) ToMap() *equals.PropertyMap       { return object.ToMap(s) }
func (s *Schema) ApplyAll(fn object.Visitor) error { return object.ApplyAll(s, fn) }

func (t *Table) Like(other object.Object) bool                       { return object.Like(t, other, nil) }
func (t *Table) LikeWith(other object.Object, h equals.Handler) bool { return object.Like(t, other, h) }
func (t *Table) Diff(other object.Object) *object.Difference         { return object.Compare(t, other, nil) }
func (t *Table) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(t, other, h)
}
func (t *Table) ToMap() *equals.PropertyMap       { return object.ToMap(t) }
func (t *Table) ApplyAll(fn object.Visitor) error { return object.ApplyAll(t, fn) }

func (c *Column) Like(other object.Object) bool { return object.Like(c, other, nil) }
func (c *Column) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(c, other, h)
}
func (c *Column) Diff(other object.Object) *object.Difference { return object.Compare(c, other, nil) }
func (c *Column) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(c, other, h)
}
func (c *Column) ToMap() *equals.PropertyMap       { return object.ToMap(c) }
func (c *Column) ApplyAll(fn object.Visitor) error { return object.ApplyAll(c, fn) }

func (c *Constraint) Like(other object.Object) bool { return object.Like(c, other, nil) }
func (c *Constraint) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(c, other, h)
}
func (c *Constraint) Diff(other object.Object) *object.Difference {
	return object.Compare(c, other, nil)
}
func (c *Constraint) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(c, other, h)
}
func (c *Constraint) ToMap() *equals.PropertyMap       { return object.ToMap(c) }
func (c *Constraint) ApplyAll(fn object.Visitor) error { return object.ApplyAll(c, fn) }

func (i *Index) Like(other object.Object) bool                       { return object.Like(i, other, nil) }
func (i *Index) LikeWith(other object.Object, h equals.Handler) bool { return object.Like(i, other, h) }
func (i *Index) Diff(other object.Object) *object.Difference         { return object.Compare(i, other, nil) }
func (i *Index) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(i, other, h)
}
func (i *Index) ToMap() *equals.PropertyMap       { return object.ToMap(i) }
func (i *Index) ApplyAll(fn object.Visitor) error { return object.ApplyAll(i, fn) }

func (t *Trigger) Like(other object.Object) bool { return object.Like(t, other, nil) }
func (t *Trigger) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(t, other, h)
}
func (t *Trigger) Diff(other object.Object) *object.Difference { return object.Compare(t, other, nil) }
func (t *Trigger) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(t, other, h)
}
func (t *Trigger) ToMap() *equals.PropertyMap       { return object.ToMap(t) }
func (t *Trigger) ApplyAll(fn object.Visitor) error { return object.ApplyAll(t, fn) }

func (p *Privilege) Like(other object.Object) bool { return object.Like(p, other, nil) }
func (p *Privilege) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(p, other, h)
}
func (p *Privilege) Diff(other object.Object) *object.Difference {
	return object.Compare(p, other, nil)
}
func (p *Privilege) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(p, other, h)
}
func (p *Privilege) ToMap() *equals.PropertyMap       { return object.ToMap(p) }
func (p *Privilege) ApplyAll(fn object.Visitor) error { return object.ApplyAll(p, fn) }

func (s *Sequence) Like(other object.Object) bool { return object.Like(s, other, nil) }
func (s *Sequence) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(s, other, h)
}
func (s *Sequence) Diff(other object.Object) *object.Difference { return object.Compare(s, other, nil) }
func (s *Sequence) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(s, other, h)
}
func (s *Sequence) ToMap() *equals.PropertyMap       { return object.ToMap(s) }
func (s *Sequence) ApplyAll(fn object.Visitor) error { return object.ApplyAll(s, fn) }

func (v *View) Like(other object.Object) bool                       { return object.Like(v, other, nil) }
func (v *View) LikeWith(other object.Object, h equals.Handler) bool { return object.Like(v, other, h) }
func (v *View) Diff(other object.Object) *object.Difference         { return object.Compare(v, other, nil) }
func (v *View) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(v, other, h)
}
func (v *View) ToMap() *equals.PropertyMap       { return object.ToMap(v) }
func (v *View) ApplyAll(fn object.Visitor) error { return object.ApplyAll(v, fn) }

func (r *Routine) Like(other object.Object) bool { return object.Like(r, other, nil) }
func (r *Routine) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(r, other, h)
}
func (r *Routine) Diff(other object.Object) *object.Difference { return object.Compare(r, other, nil) }
func (r *Routine) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(r, other, h)
}
func (r *Routine) ToMap() *equals.PropertyMap       { return object.ToMap(r) }
func (r *Routine) ApplyAll(fn object.Visitor) error { return object.ApplyAll(r, fn) }

func (p *Parameter) Like(other object.Object) bool { return object.Like(p, other, nil) }
func (p *Parameter) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(p, other, h)
}
func (p *Parameter) Diff(other object.Object) *object.Difference {
	return object.Compare(p, other, nil)
}
func (p *Parameter) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(p, other, h)
}
func (p *Parameter) ToMap() *equals.PropertyMap       { return object.ToMap(p) }
func (p *Parameter) ApplyAll(fn object.Visitor) error { return object.ApplyAll(p, fn) }

func (u *UserType) Like(other object.Object) bool { return object.Like(u, other, nil) }
func (u *UserType) LikeWith(other object.Object, h equals.Handler) bool {
	return object.Like(u, other, h)
}
func (u *UserType) Diff(other object.Object) *object.Difference { return object.Compare(u, other, nil) }
func (u *UserType) DiffWith(other object.Object, h equals.Handler) *object.Difference {
	return object.Compare(u, other, h)
}
func (u *UserType) ToMap() *equals.PropertyMap       { return object.ToMap(u) }
func (u *UserType) ApplyAll(fn object.Visitor) error { return object.ApplyAll(u, fn) }
