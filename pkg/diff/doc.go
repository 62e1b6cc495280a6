// Package diff computes edit scripts between two ordered sequences.
//
// Diff uses the longest common subsequence of the two inputs with a caller supplied
// equivalence function. Elements are never compared with ==, so callers decide what
// "the same element" means (same name, like each other under a handler, ...).
//
// The result is deterministic: when several alignments have the same length, each
// element of the target is matched with the earliest possible element of the source,
// and within a run of changes deletions are emitted before insertions.
//
//	script := diff.Diff(oldColumns, newColumns, sameName)
//	for _, e := range script {
//	    switch e.Op {
//	    case diff.Insert:
//	        fmt.Println("+", e.Target.Name)
//	    case diff.Delete:
//	        fmt.Println("-", e.Source.Name)
//	    }
//	}
package diff
