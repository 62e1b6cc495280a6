// Package state classifies how a single value changed between two snapshots of a
// schema.
//
// Of derives the State of a property transition from its two values, and Reverse
// flips it for a comparison made in the other direction:
//
//	st := state.Of(oldComment, newComment) // state.Modified
//	st.Reverse()                           // state.Modified
//	state.Of(nil, "hr").Reverse()          // state.Deleted
//
// States render by name ("ADDED", "MODIFIED", ...) through MarshalText and as a
// single marker character through Symbol:
//
//	state.Added.Symbol()     // +
//	state.Deleted.Symbol()   // -
//	state.Modified.Symbol()  // ~
//	state.Unchanged.Symbol() // blank

package state
