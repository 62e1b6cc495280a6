package utils

import (
	"strconv"
)

// IsNumericValue checks if a string represents a valid numeric value.
// This uses strconv.ParseFloat to properly validate numeric formats,
// including integers, floats, and scientific notation.
//
// Examples:
//   - "123" -> true
//   - "-123.45" -> true
//   - "1.23e-4" -> true
//   - "abc" -> false
//   - "" -> false
func IsNumericValue(value string) bool {
	if value == "" {
		return false
	}

	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// IsIntegerValue checks if a string is a base 10 integer that fits in an int64.
func IsIntegerValue(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}
