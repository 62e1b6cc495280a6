package report

import (
	"testing"

	"github.com/pseudomuto/schemata/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	var nilPtr *int64

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: "null"},
		{name: "nil pointer", value: nilPtr, expected: "null"},
		{name: "pointer", value: utils.Ptr(int64(10)), expected: "10"},
		{name: "string pointer", value: utils.Ptr("now()"), expected: "now()"},
		{name: "empty string", value: "", expected: `""`},
		{name: "bool", value: true, expected: "true"},
		{name: "slice", value: []string{"a", "b"}, expected: "[a, b]"},
		{name: "empty slice", value: []string{}, expected: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, formatValue(tt.value))
		})
	}
}
