package clickhouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a parsed ClickHouse server version.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast reports whether v is major.minor or newer.
func (v Version) IsAtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// Version queries the server version.
func (c *Client) Version(ctx context.Context) (Version, error) {
	var raw string
	if err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&raw); err != nil {
		return Version{}, errors.Wrap(err, "failed to query clickhouse version")
	}

	return ParseVersion(raw)
}

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion reads versions such as "24.3.1.2672", "22.8.2.11-testing" or
// "21.10.3.9 (official build)".
func ParseVersion(raw string) (Version, error) {
	cleaned := strings.TrimSpace(raw)
	if i := strings.IndexAny(cleaned, " -"); i != -1 {
		cleaned = cleaned[:i]
	}

	m := versionPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return Version{}, errors.Errorf("invalid clickhouse version %q", raw)
	}

	v := Version{Raw: raw}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		v.Patch, _ = strconv.Atoi(m[3])
	}
	return v, nil
}
