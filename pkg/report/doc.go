// Package report renders difference trees for people and tools.
//
// A Report keeps only the changed nodes of a tree, together with change counts
// and probable renames. It is written as an indented text listing, optionally
// coloured, or as YAML.
//
// Usage:
//
//	d := object.Compare(left, right, h)
//	r := report.New(d, h)
//
//	// Plain text
//	err := r.Write(os.Stdout, report.Options{Format: report.Text})
//
//	// Coloured text, regardless of the terminal
//	err := r.Write(os.Stdout, report.Options{Format: report.Text, Color: true})
//
//	// YAML
//	err := r.Write(os.Stdout, report.Options{Format: report.YAML})
//
// Text output looks like:
//
//	~ catalog hr
//	  ~ schema public
//	    ~ table EMP
//	      - column NAME
//	      + column FULL_NAME
//	      ~ column SALARY
//	          dataType: integer -> numeric
//
//	Probable renames:
//	  column NAME -> FULL_NAME in table EMP
//
//	5 changes: 1 added, 3 modified, 1 deleted, 1 property.
package report
