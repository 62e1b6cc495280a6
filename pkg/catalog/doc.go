// Package catalog holds the relational schema metadata model.
//
// The model is a tree of plain structs owned top-down:
//
//	Catalog
//	└── Schema
//	    ├── UserType
//	    ├── Sequence
//	    ├── Table
//	    │   ├── Column
//	    │   ├── Constraint
//	    │   ├── Index
//	    │   ├── Trigger
//	    │   └── Privilege
//	    ├── View
//	    │   └── Column
//	    └── Routine
//	        └── Parameter
//
// Every type implements object.Node, so any two objects (or whole catalogs) can be
// compared with Like, diffed with Diff and snapshot with ToMap. Children are
// created through their owning list, which wires the parent reference:
//
//	cat := catalog.New("main")
//	hr := cat.EnsureSchema("hr")
//	emp, _ := hr.Tables.Add(func(t *catalog.Table) error {
//	    t.Name = "EMP"
//	    return nil
//	})
//	id, _ := emp.Columns.NewElement()
//	id.Name, id.DataType = "ID", "integer"
//
// Only columns, view columns and routine parameters are ordered. Everything else is
// compared regardless of order.
package catalog
