package document_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/schemata/pkg/catalog"
	. "github.com/pseudomuto/schemata/pkg/document"
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/object"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) *catalog.Catalog {
	t.Helper()

	cat, err := ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return cat
}

func TestReadFile(t *testing.T) {
	cat := readFixture(t, "hr.xml")
	require.Equal(t, "main", cat.Name)

	hr, ok := cat.Schema("hr")
	require.True(t, ok)
	require.Equal(t, "admin", hr.Owner)
	require.Equal(t, []string{"DEPT", "EMP"}, hr.Tables.Names())

	emp, _ := hr.Table("EMP")
	require.Equal(t, []string{"ID", "NAME", "SALARY", "DEPT_ID"}, emp.Columns.Names())

	id, _ := emp.Column("ID")
	require.False(t, id.Nullable)
	require.True(t, id.AutoIncrement)

	salary, _ := emp.Column("SALARY")
	require.True(t, salary.Nullable)
	require.Equal(t, int64(10), *salary.Precision)
	require.Equal(t, "0", *salary.DefaultValue)
	require.Same(t, emp, salary.Parent())

	fk, ok := emp.Constraints.Get("EMP_DEPT_FK")
	require.True(t, ok)
	require.Equal(t, catalog.ForeignKey, fk.Type)
	require.Equal(t, catalog.Cascade, fk.OnDelete)
	require.Equal(t, []string{"ID"}, fk.ReferencedColumns)

	pk, ok := emp.PrimaryKey()
	require.True(t, ok)
	require.Equal(t, "EMP_PK", pk.Name)

	trg, _ := emp.Triggers.Get("EMP_AUDIT")
	require.Equal(t, []catalog.TriggerEvent{catalog.OnInsert, catalog.OnUpdate}, trg.Events)

	raise, _ := hr.Routines.Get("raise")
	require.Equal(t, 2, raise.Parameters.Len())
	require.Equal(t, catalog.In, raise.Parameters.At(0).Mode)
}

func TestXMLAndYAMLDescribeTheSameCatalog(t *testing.T) {
	x := readFixture(t, "hr.xml")
	y := readFixture(t, "hr.yaml")

	require.True(t, x.Like(y))
	require.False(t, x.Diff(y).HasChanges())
}

func TestRoundTrip(t *testing.T) {
	src := readFixture(t, "hr.yaml")

	for _, format := range []Format{XML, YAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, src, format))

			dst, err := Read(&buf, format)
			require.NoError(t, err)
			require.True(t, src.Like(dst), src.Diff(dst).Changes())
		})
	}
}

func TestSQLRoundTrip(t *testing.T) {
	src := readFixture(t, "hr.xml")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, SQL))
	require.Contains(t, buf.String(), `CREATE SCHEMA "hr" AUTHORIZATION "admin";`)
	require.Contains(t, buf.String(), `"SALARY" numeric(10, 2) DEFAULT 0`)

	dst, err := Read(&buf, SQL)
	require.NoError(t, err)

	srcHR, _ := src.Schema("hr")
	dstHR, ok := dst.Schema("hr")
	require.True(t, ok)

	// Triggers, grants, routines and view column types have no DDL form.
	h := equals.NewExclude("triggers", "privileges", "routines", "view.columns")
	require.True(t, srcHR.LikeWith(dstHR, h), srcHR.DiffWith(dstHR, h).Changes())
	require.False(t, srcHR.Like(dstHR))
}

func TestWriteFile(t *testing.T) {
	src := readFixture(t, "hr.xml")
	path := filepath.Join(t.TempDir(), "out.yml")

	require.NoError(t, WriteFile(path, src))

	dst, err := ReadFile(path)
	require.NoError(t, err)
	require.True(t, src.Like(dst))
}

func TestReadSQL(t *testing.T) {
	cat, err := Read(strings.NewReader(`
		CREATE TABLE hr.EMP (
			ID integer NOT NULL PRIMARY KEY,
			NAME varchar(100)
		);
	`), SQL)
	require.NoError(t, err)

	hr, ok := cat.Schema("hr")
	require.True(t, ok)

	emp, ok := hr.Table("EMP")
	require.True(t, ok)
	require.Equal(t, []string{"ID", "NAME"}, emp.Columns.Names())
}

func TestFormats(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		err    bool
	}{
		{path: "a.xml", format: XML},
		{path: "a.YAML", format: YAML},
		{path: "dir/a.yml", format: YAML},
		{path: "a.sql", format: SQL},
		{path: "a.json", err: true},
		{path: "noext", err: true},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			format, err := FormatOf(test.path)
			if test.err {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.format, format)
		})
	}

	require.ErrorIs(t, Write(&bytes.Buffer{}, catalog.New("x"), Format("json")), ErrUnknownFormat)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "duplicate column",
			doc: `
name: main
schemas:
  - name: hr
    tables:
      - name: EMP
        columns:
          - {name: ID, type: integer}
          - {name: ID, type: bigint}
`,
			err: object.ErrDuplicateName,
		},
		{
			name: "unknown constraint type",
			doc: `
name: main
schemas:
  - name: hr
    tables:
      - name: EMP
        constraints:
          - {name: X, type: SIDEWAYS}
`,
			err: catalog.ErrUnknownValue,
		},
		{
			name: "duplicate schema",
			doc: `
name: main
schemas:
  - name: hr
  - name: hr
`,
			err: object.ErrDuplicateName,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(test.doc), YAML)
			require.ErrorIs(t, err, test.err)
		})
	}
}
