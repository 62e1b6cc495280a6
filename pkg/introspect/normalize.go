package introspect

import (
	"strings"

	"github.com/pseudomuto/schemata/pkg/catalog"
)

// ReferentialAction parses a vendor action. NO ACTION is the implicit default and
// is reported as empty.
func ReferentialAction(s string) (catalog.ReferentialAction, error) {
	if s = strings.TrimSpace(s); s == "" {
		return "", nil
	}

	a, err := catalog.ParseReferentialAction(s)
	if err != nil || a == catalog.NoAction {
		return "", err
	}
	return a, nil
}

// ReferencedSchema returns ref, or empty when it names the referencing schema.
func ReferencedSchema(owner, ref string) string {
	if ref == owner {
		return ""
	}
	return ref
}

// SplitList splits a comma separated list, trimming blanks and dropping empty
// items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
