package report

import (
	"fmt"
	"reflect"
	"strings"
)

// formatValue renders a property value: nil and nil pointers as null, pointers by
// their target and slices as [a, b].
func formatValue(v any) string {
	if v == nil {
		return "null"
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = formatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.String:
		if s := rv.String(); s != "" {
			return s
		}
		return `""`
	default:
		return fmt.Sprint(rv.Interface())
	}
}
