package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/object"
	"github.com/pseudomuto/schemata/pkg/parser"
	. "github.com/pseudomuto/schemata/pkg/report"
	"github.com/pseudomuto/schemata/pkg/state"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func load(t *testing.T, sql string) *catalog.Catalog {
	t.Helper()

	cat, err := parser.LoadCatalog("hr", strings.NewReader(sql))
	require.NoError(t, err)
	return cat
}

func empReport(t *testing.T) *Report {
	t.Helper()

	src := load(t, `CREATE TABLE EMP (ID integer NOT NULL, NAME varchar(50), SALARY integer);`)
	dst := load(t, `CREATE TABLE EMP (ID integer NOT NULL, FULL_NAME varchar(50), SALARY numeric);`)

	return New(object.Compare(src, dst, nil), nil)
}

func TestNew(t *testing.T) {
	r := empReport(t)

	require.True(t, r.HasChanges())
	require.Equal(t, Stats{Added: 1, Modified: 3, Deleted: 1, Properties: 1}, r.Stats)
	require.Equal(t, 5, r.Stats.Total())
	require.Equal(t, []Rename{{Kind: "column", From: "NAME", To: "FULL_NAME", Parent: "table EMP"}}, r.Renames)

	table := r.Changes[0].Children[0].Children[0]
	require.Equal(t, "EMP", table.Name)
	require.Len(t, table.Children, 3, "unchanged ID is left out")

	salary := table.Children[2]
	require.Equal(t, state.Modified, salary.State)
	require.Equal(t, []Property{{Name: "dataType", State: state.Modified, Source: "integer", Target: "numeric"}}, salary.Properties)
}

func TestNewUnchanged(t *testing.T) {
	sql := `CREATE TABLE EMP (ID integer NOT NULL, NAME varchar(50));`
	r := New(object.Compare(load(t, sql), load(t, sql), nil), nil)

	require.False(t, r.HasChanges())
	require.Empty(t, r.Renames)
	require.Zero(t, r.Stats.Total())
}

func TestNewMovedColumn(t *testing.T) {
	src := load(t, `CREATE TABLE EMP (ID integer, NAME varchar(50));`)
	dst := load(t, `CREATE TABLE EMP (NAME varchar(50), ID integer);`)

	r := New(object.Compare(src, dst, nil), nil)
	require.Empty(t, r.Renames)
	require.Equal(t, Stats{Modified: 3, Properties: 1}, r.Stats)

	table := r.Changes[0].Children[0].Children[0]
	require.Len(t, table.Children, 1)

	id := table.Children[0]
	require.Equal(t, "ID", id.Name)
	require.Equal(t, state.Modified, id.State)
	require.Equal(t, []Property{{Name: object.PositionProperty, State: state.Modified, Source: "1", Target: "2"}}, id.Properties)
}

func TestNewWithHandler(t *testing.T) {
	src := load(t, `CREATE TABLE EMP (ID integer, SALARY integer);`)
	dst := load(t, `CREATE TABLE EMP (ID integer, SALARY numeric);`)

	h := equals.NewExclude("dataType")
	require.False(t, New(object.Compare(src, dst, h), h).HasChanges())
}

func TestWriteGolden(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{name: "emp.txt", format: Text},
		{name: "emp.yaml", format: YAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, empReport(t).Write(&buf, Options{Format: tt.format}))
			golden.Assert(t, buf.String(), tt.name)
		})
	}
}

func TestWriteTextNoChanges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, new(Report).Write(&buf, Options{}))
	require.Equal(t, "No differences.\n", buf.String())
}

func TestWriteTextColor(t *testing.T) {
	var plain, colored bytes.Buffer
	r := empReport(t)

	require.NoError(t, r.WriteText(&plain, false))
	require.NoError(t, r.WriteText(&colored, true))

	require.NotContains(t, plain.String(), "\x1b[")
	require.Contains(t, colored.String(), "\x1b[")
	require.Contains(t, colored.String(), "+ column FULL_NAME")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := empReport(t).Write(new(bytes.Buffer), Options{Format: "html"})
	require.ErrorIs(t, err, ErrUnknownFormat)
}
