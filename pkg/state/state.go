package state

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/compare"
)

// State is the change classification of a node or property.
type State int

const (
	Unchanged State = iota
	Added
	Modified
	Deleted
)

// ErrInvalidState is returned when parsing an unknown state name.
var ErrInvalidState = errors.New("invalid state")

var names = map[State]string{
	Unchanged: "UNCHANGED",
	Added:     "ADDED",
	Modified:  "MODIFIED",
	Deleted:   "DELETED",
}

// Of derives the State of a value transition from original to target using value
// equality:
//
//	nil      -> nil      Unchanged
//	nil      -> x        Added
//	x        -> nil      Deleted
//	x        -> x        Unchanged
//	x        -> y        Modified
func Of(original, target any) State {
	origNil, targetNil := compare.IsNil(original), compare.IsNil(target)

	switch {
	case origNil && targetNil:
		return Unchanged
	case origNil:
		return Added
	case targetNil:
		return Deleted
	case compare.Values(original, target):
		return Unchanged
	default:
		return Modified
	}
}

// Parse returns the State with the given name (case-insensitive).
func Parse(s string) (State, error) {
	for st, name := range names {
		if strings.EqualFold(name, s) {
			return st, nil
		}
	}

	return Unchanged, errors.Wrapf(ErrInvalidState, "%q", s)
}

// Reverse returns the state seen when comparing in the opposite direction.
func (s State) Reverse() State {
	switch s {
	case Added:
		return Deleted
	case Deleted:
		return Added
	default:
		return s
	}
}

// IsUnchanged reports whether s is Unchanged.
func (s State) IsUnchanged() bool { return s == Unchanged }

// IsAdded reports whether s is Added.
func (s State) IsAdded() bool { return s == Added }

// IsModified reports whether s is Modified.
func (s State) IsModified() bool { return s == Modified }

// IsDeleted reports whether s is Deleted.
func (s State) IsDeleted() bool { return s == Deleted }

// IsChanged is true for every state except Unchanged.
func (s State) IsChanged() bool { return s != Unchanged }

// Symbol returns the single character marker used in reports.
func (s State) Symbol() string {
	switch s {
	case Added:
		return "+"
	case Deleted:
		return "-"
	case Modified:
		return "~"
	default:
		return " "
	}
}

func (s State) String() string {
	if name, ok := names[s]; ok {
		return name
	}

	return "UNKNOWN"
}

// MarshalText renders s by name, e.g. "ADDED", so states read naturally in YAML
// reports.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name as Parse does.
func (s *State) UnmarshalText(text []byte) error {
	st, err := Parse(string(text))
	if err != nil {
		return err
	}

	*s = st
	return nil
}
