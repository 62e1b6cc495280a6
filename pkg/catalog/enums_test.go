package catalog_test

import (
	"testing"

	. "github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/stretchr/testify/require"
)

func TestParseConstraintType(t *testing.T) {
	tests := []struct {
		input    string
		expected ConstraintType
	}{
		{input: "PRIMARY KEY", expected: PrimaryKey},
		{input: "primary_key", expected: PrimaryKey},
		{input: "p", expected: PrimaryKey},
		{input: "Foreign  Key", expected: ForeignKey},
		{input: "f", expected: ForeignKey},
		{input: "unique", expected: Unique},
		{input: "c", expected: Check},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConstraintType(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseConstraintType("exclusion")
	require.ErrorIs(t, err, ErrUnknownValue)
	require.Contains(t, err.Error(), `constraint type "exclusion"`)
}

func TestParseEnums(t *testing.T) {
	action, err := ParseReferentialAction("set_null")
	require.NoError(t, err)
	require.Equal(t, SetNull, action)

	action, err = ParseReferentialAction("a")
	require.NoError(t, err)
	require.Equal(t, NoAction, action)

	timing, err := ParseTriggerTiming("instead of")
	require.NoError(t, err)
	require.Equal(t, InsteadOf, timing)

	orientation, err := ParseTriggerOrientation("FOR EACH ROW")
	require.NoError(t, err)
	require.Equal(t, ForEachRow, orientation)

	mode, err := ParseParameterMode("in out")
	require.NoError(t, err)
	require.Equal(t, InOut, mode)

	rt, err := ParseRoutineType("p")
	require.NoError(t, err)
	require.Equal(t, Procedure, rt)

	priv, err := ParsePrivilegeType("all")
	require.NoError(t, err)
	require.Equal(t, AllPrivileges, priv)

	cat, err := ParseTypeCategory("e")
	require.NoError(t, err)
	require.Equal(t, EnumType, cat)

	_, err = ParseTriggerTiming("during")
	require.ErrorIs(t, err, ErrUnknownValue)
}

func TestParseTriggerEvents(t *testing.T) {
	tests := []struct {
		input    string
		expected []TriggerEvent
	}{
		{input: "INSERT", expected: []TriggerEvent{OnInsert}},
		{input: "insert or update", expected: []TriggerEvent{OnInsert, OnUpdate}},
		{input: "INSERT, UPDATE,DELETE", expected: []TriggerEvent{OnInsert, OnUpdate, OnDelete}},
		{input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTriggerEvents(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseTriggerEvents("INSERT OR SELECT")
	require.ErrorIs(t, err, ErrUnknownValue)
}
