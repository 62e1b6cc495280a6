package cmd

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/document"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const (
	empSQL     = "CREATE TABLE EMP (ID integer NOT NULL, NAME varchar(50));\n"
	empSalary  = "CREATE TABLE EMP (ID integer NOT NULL, NAME varchar(50), SALARY numeric(10,2));\n"
	empRenamed = "CREATE TABLE EMP (ID integer NOT NULL, FULL_NAME varchar(50));\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes command as a subcommand of a test app and returns its output.
func run(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	command.Writer = &buf

	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{command},
		Writer:   &buf,
	}

	err := app.Run(context.Background(), append([]string{"test", command.Name}, args...))
	return buf.String(), err
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.sql", empSQL)
	right := writeFile(t, dir, "right.sql", empSalary)

	t.Run("text", func(t *testing.T) {
		out, err := run(t, diff(config.Defaults()), left, right)
		require.NoError(t, err)
		require.Contains(t, out, "    ~ table EMP\n      + column SALARY\n")
		require.Contains(t, out, "3 changes: 1 added, 2 modified, 0 deleted")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, diff(config.Defaults()), "--format", "yaml", left, right)
		require.NoError(t, err)
		require.Contains(t, out, "name: SALARY\n")
		require.Contains(t, out, "state: ADDED\n")
	})

	t.Run("exit code", func(t *testing.T) {
		_, err := run(t, diff(config.Defaults()), "--exit-code", left, right)
		require.ErrorIs(t, err, ErrDifferences)

		out, err := run(t, diff(config.Defaults()), "--exit-code", left, left)
		require.NoError(t, err)
		require.Equal(t, "No differences.\n", out)
	})

	t.Run("excluded property", func(t *testing.T) {
		out, err := run(t, diff(config.Defaults()), "--exclude", "columns", left, right)
		require.NoError(t, err)
		require.Equal(t, "No differences.\n", out)
	})

	t.Run("rename hint", func(t *testing.T) {
		renamed := writeFile(t, dir, "renamed.sql", empRenamed)

		out, err := run(t, diff(config.Defaults()), left, renamed)
		require.NoError(t, err)
		require.Contains(t, out, "- column NAME\n")
		require.Contains(t, out, "+ column FULL_NAME\n")
		require.Contains(t, out, "column NAME -> FULL_NAME in table EMP")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, diff(config.Defaults()), left)
		require.ErrorContains(t, err, "exactly two catalog arguments are required")

		_, err = run(t, diff(config.Defaults()), "--format", "html", left, right)
		require.ErrorContains(t, err, "unknown report format")

		_, err = run(t, diff(config.Defaults()), "--profile", "missing", left, right)
		require.ErrorIs(t, err, config.ErrUnknownProfile)

		_, err = run(t, diff(config.Defaults()), left, filepath.Join(dir, "missing.sql"))
		require.ErrorContains(t, err, "failed to load")
	})
}

func TestLikeCommand(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.sql", empSQL)
	right := writeFile(t, dir, "right.sql", empSalary)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "identical", args: []string{left, left}, expected: "true\n"},
		{name: "extra column", args: []string{left, right}, expected: "false\n"},
		{name: "columns excluded", args: []string{"--exclude", "columns", left, right}, expected: "true\n"},
		{name: "columns not included", args: []string{"--include", "comment", left, right}, expected: "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, like(config.Defaults()), tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	_, err := run(t, like(config.Defaults()), "--exit-code", left, right)
	require.ErrorIs(t, err, ErrDifferences)
}

func TestDumpCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hr.sql", empSQL)

	t.Run("document", func(t *testing.T) {
		out, err := run(t, dump(config.Defaults()), path)
		require.NoError(t, err)

		cat, err := document.Read(bytes.NewBufferString(out), document.YAML)
		require.NoError(t, err)
		_, err = cat.Lookup("public.EMP.NAME")
		require.NoError(t, err)
	})

	t.Run("xml", func(t *testing.T) {
		out, err := run(t, dump(config.Defaults()), "--format", "xml", path)
		require.NoError(t, err)
		require.Contains(t, out, "<?xml")
	})

	t.Run("path", func(t *testing.T) {
		out, err := run(t, dump(config.Defaults()), "--path", "public.EMP.NAME", path)
		require.NoError(t, err)
		require.Contains(t, out, "dataType: varchar\n")
		require.Contains(t, out, "length: 50\n")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := run(t, dump(config.Defaults()), "--path", "public.EMP.NAM", path)
		require.ErrorContains(t, err, "did you mean public.EMP.NAME")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, dump(config.Defaults()), "--format", "json", path)
		require.ErrorIs(t, err, document.ErrUnknownFormat)
	})
}

func TestIntrospectCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(empSalary)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := config.Defaults()
	cfg.Sources["app"] = config.Source{Driver: "sqlite", DSN: dbPath}
	cfg.Sources["doc"] = config.Source{File: "doc.yaml"}

	t.Run("stdout", func(t *testing.T) {
		out, err := run(t, introspectCmd(cfg), "--driver", "sqlite", "--dsn", dbPath)
		require.NoError(t, err)
		require.Contains(t, out, "SALARY")
	})

	t.Run("source to file", func(t *testing.T) {
		out := filepath.Join(dir, "baseline.yaml")
		_, err := run(t, introspectCmd(cfg), "--source", "app", "--out", out)
		require.NoError(t, err)

		cat, err := document.ReadFile(out)
		require.NoError(t, err)
		_, err = cat.Lookup("main.EMP.SALARY")
		require.NoError(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, introspectCmd(cfg))
		require.ErrorContains(t, err, "either --source or both --driver and --dsn are required")

		_, err = run(t, introspectCmd(cfg), "--source", "app", "--driver", "sqlite")
		require.ErrorContains(t, err, "cannot be combined")

		_, err = run(t, introspectCmd(cfg), "--source", "doc")
		require.ErrorContains(t, err, "source doc is a file")

		_, err = run(t, introspectCmd(cfg), "--driver", "oracle", "--dsn", "x")
		require.ErrorContains(t, err, "unknown driver")
	})
}

func TestSourceReferences(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.sql", empSQL)

	cfg := config.Defaults()
	cfg.Sources["baseline"] = config.Source{File: left}

	out, err := run(t, like(cfg), "source:baseline", left)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	_, err = run(t, like(cfg), "source:missing", left)
	require.ErrorIs(t, err, config.ErrUnknownSource)
}

func TestNewAppConfigFlag(t *testing.T) {
	dir := t.TempDir()
	left := writeFile(t, dir, "left.sql", empSQL)
	right := writeFile(t, dir, "right.sql", empSalary)
	cfgPath := writeFile(t, dir, "schemata.yaml", "profiles:\n  loose:\n    exclude: [columns]\n")

	cfg := config.Defaults()
	var buf bytes.Buffer
	likeCmd := like(cfg)
	likeCmd.Writer = &buf

	app := NewApp(&Version{Version: "test"}, cfg, likeCmd)
	app.Writer = &buf

	err := app.Run(context.Background(), []string{"schemata", "--config", cfgPath, "like", "--profile", "loose", left, right})
	require.NoError(t, err)
	require.Equal(t, "true\n", buf.String())
	require.Equal(t, []string{"loose"}, cfg.ProfileNames())
}
