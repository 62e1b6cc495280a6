package catalog

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownValue is returned when a vendor string maps to no known enum value.
var ErrUnknownValue = errors.New("unknown value")

type (
	ConstraintType     string
	ReferentialAction  string
	TriggerTiming      string
	TriggerEvent       string
	TriggerOrientation string
	ParameterMode      string
	RoutineType        string
	PrivilegeType      string
	TypeCategory       string
)

const (
	PrimaryKey ConstraintType = "PRIMARY KEY"
	Unique     ConstraintType = "UNIQUE"
	ForeignKey ConstraintType = "FOREIGN KEY"
	Check      ConstraintType = "CHECK"

	NoAction   ReferentialAction = "NO ACTION"
	Restrict   ReferentialAction = "RESTRICT"
	Cascade    ReferentialAction = "CASCADE"
	SetNull    ReferentialAction = "SET NULL"
	SetDefault ReferentialAction = "SET DEFAULT"

	Before    TriggerTiming = "BEFORE"
	After     TriggerTiming = "AFTER"
	InsteadOf TriggerTiming = "INSTEAD OF"

	OnInsert   TriggerEvent = "INSERT"
	OnUpdate   TriggerEvent = "UPDATE"
	OnDelete   TriggerEvent = "DELETE"
	OnTruncate TriggerEvent = "TRUNCATE"

	ForEachRow       TriggerOrientation = "ROW"
	ForEachStatement TriggerOrientation = "STATEMENT"

	In    ParameterMode = "IN"
	Out   ParameterMode = "OUT"
	InOut ParameterMode = "INOUT"

	Function  RoutineType = "FUNCTION"
	Procedure RoutineType = "PROCEDURE"

	SelectPrivilege     PrivilegeType = "SELECT"
	InsertPrivilege     PrivilegeType = "INSERT"
	UpdatePrivilege     PrivilegeType = "UPDATE"
	DeletePrivilege     PrivilegeType = "DELETE"
	TruncatePrivilege   PrivilegeType = "TRUNCATE"
	ReferencesPrivilege PrivilegeType = "REFERENCES"
	TriggerPrivilege    PrivilegeType = "TRIGGER"
	UsagePrivilege      PrivilegeType = "USAGE"
	ExecutePrivilege    PrivilegeType = "EXECUTE"
	AllPrivileges       PrivilegeType = "ALL PRIVILEGES"

	EnumType      TypeCategory = "ENUM"
	DomainType    TypeCategory = "DOMAIN"
	CompositeType TypeCategory = "COMPOSITE"
)

// lookup is a vendor string table for a single enum.
type lookup[T ~string] struct {
	name    string
	values  []T
	aliases map[string]T
}

// normalize upper-cases s, turns underscores into spaces and collapses whitespace so
// "primary_key", "Primary  Key" and "PRIMARY KEY" are the same.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(strings.ReplaceAll(s, "_", " "))), " ")
}

func (l lookup[T]) parse(s string) (T, error) {
	n := normalize(s)
	if i := slices.Index(l.values, T(n)); i >= 0 {
		return l.values[i], nil
	}

	if v, ok := l.aliases[n]; ok {
		return v, nil
	}

	var zero T
	return zero, errors.Wrapf(ErrUnknownValue, "%s %q", l.name, s)
}

var (
	constraintTypes = lookup[ConstraintType]{
		name:   "constraint type",
		values: []ConstraintType{PrimaryKey, Unique, ForeignKey, Check},
		aliases: map[string]ConstraintType{
			"P": PrimaryKey, "PK": PrimaryKey, "PRIMARY": PrimaryKey,
			"U": Unique, "UQ": Unique, "UNIQUE KEY": Unique,
			"F": ForeignKey, "FK": ForeignKey, "REFERENCES": ForeignKey,
			"C": Check,
		},
	}

	referentialActions = lookup[ReferentialAction]{
		name:   "referential action",
		values: []ReferentialAction{NoAction, Restrict, Cascade, SetNull, SetDefault},
		aliases: map[string]ReferentialAction{
			"A": NoAction, "NOACTION": NoAction, "NONE": NoAction,
			"R": Restrict,
			"C": Cascade,
			"N": SetNull, "SETNULL": SetNull,
			"D": SetDefault, "SETDEFAULT": SetDefault,
		},
	}

	triggerTimings = lookup[TriggerTiming]{
		name:    "trigger timing",
		values:  []TriggerTiming{Before, After, InsteadOf},
		aliases: map[string]TriggerTiming{"INSTEADOF": InsteadOf},
	}

	triggerEvents = lookup[TriggerEvent]{
		name:   "trigger event",
		values: []TriggerEvent{OnInsert, OnUpdate, OnDelete, OnTruncate},
	}

	triggerOrientations = lookup[TriggerOrientation]{
		name:   "trigger orientation",
		values: []TriggerOrientation{ForEachRow, ForEachStatement},
		aliases: map[string]TriggerOrientation{
			"FOR EACH ROW": ForEachRow, "FOR EACH STATEMENT": ForEachStatement,
		},
	}

	parameterModes = lookup[ParameterMode]{
		name:    "parameter mode",
		values:  []ParameterMode{In, Out, InOut},
		aliases: map[string]ParameterMode{"IN OUT": InOut, "I": In, "O": Out, "B": InOut},
	}

	routineTypes = lookup[RoutineType]{
		name:    "routine type",
		values:  []RoutineType{Function, Procedure},
		aliases: map[string]RoutineType{"F": Function, "P": Procedure, "FUNC": Function, "PROC": Procedure},
	}

	privilegeTypes = lookup[PrivilegeType]{
		name: "privilege type",
		values: []PrivilegeType{
			SelectPrivilege, InsertPrivilege, UpdatePrivilege, DeletePrivilege, TruncatePrivilege,
			ReferencesPrivilege, TriggerPrivilege, UsagePrivilege, ExecutePrivilege, AllPrivileges,
		},
		aliases: map[string]PrivilegeType{"ALL": AllPrivileges},
	}

	typeCategories = lookup[TypeCategory]{
		name:    "type category",
		values:  []TypeCategory{EnumType, DomainType, CompositeType},
		aliases: map[string]TypeCategory{"E": EnumType, "D": DomainType, "C": CompositeType},
	}
)

// ParseConstraintType accepts standard names ("PRIMARY KEY") and vendor codes
// ("p" from pg_constraint.contype).
func ParseConstraintType(s string) (ConstraintType, error) { return constraintTypes.parse(s) }

// ParseReferentialAction accepts standard names ("SET NULL") and pg_constraint codes.
func ParseReferentialAction(s string) (ReferentialAction, error) {
	return referentialActions.parse(s)
}

func ParseTriggerTiming(s string) (TriggerTiming, error) { return triggerTimings.parse(s) }
func ParseTriggerEvent(s string) (TriggerEvent, error)   { return triggerEvents.parse(s) }

func ParseTriggerOrientation(s string) (TriggerOrientation, error) {
	return triggerOrientations.parse(s)
}

func ParseParameterMode(s string) (ParameterMode, error) { return parameterModes.parse(s) }
func ParseRoutineType(s string) (RoutineType, error)     { return routineTypes.parse(s) }
func ParsePrivilegeType(s string) (PrivilegeType, error) { return privilegeTypes.parse(s) }
func ParseTypeCategory(s string) (TypeCategory, error)   { return typeCategories.parse(s) }

// ParseTriggerEvents parses a list of events separated by commas or "OR", as in
// "INSERT OR UPDATE".
func ParseTriggerEvents(s string) ([]TriggerEvent, error) {
	fields := strings.FieldsFunc(strings.ReplaceAll(normalize(s), " OR ", ","), func(r rune) bool {
		return r == ','
	})

	var events []TriggerEvent
	for _, f := range fields {
		ev, err := ParseTriggerEvent(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, nil
}
