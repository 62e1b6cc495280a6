package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/schemata.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		require.Equal(t, []string{"default", "structure"}, cfg.ProfileNames())
		require.Equal(t, []string{"baseline", "local", "prod"}, cfg.SourceNames())
		require.Equal(t, Profile{Exclude: []string{"comment"}}, cfg.Profiles["default"])
		require.Equal(t, Source{File: "db/baseline.yaml"}, cfg.Sources["baseline"])
	})

	t.Run("empty", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Defaults(), cfg)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			yaml string
			err  string
		}{
			{name: "invalid yaml", yaml: "invalid: yaml: [", err: "failed to unmarshal schemata config"},
			{name: "wrong shape", yaml: "profiles: [a, b]", err: "failed to unmarshal schemata config"},
			{
				name: "exclude and include",
				yaml: "profiles:\n  mixed:\n    exclude: [a]\n    include: [b]\n",
				err:  "profile mixed: exclude and include are mutually exclusive",
			},
			{
				name: "source without driver or file",
				yaml: "sources:\n  empty:\n    dsn: x\n",
				err:  "source empty: either driver or file is required",
			},
			{
				name: "source with driver and file",
				yaml: "sources:\n  both:\n    driver: sqlite\n    file: a.yaml\n",
				err:  "source both: driver and file are mutually exclusive",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg, err := LoadConfig(strings.NewReader(tt.yaml))
				require.ErrorContains(t, err, tt.err)
				require.Nil(t, cfg)
			})
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 3)

	_, err = LoadConfigFile("nonexistent.yaml")
	require.ErrorContains(t, err, "failed to open file: nonexistent.yaml")
}

func TestPath(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.Equal(t, DefaultFile, Path())

	t.Setenv(EnvVar, "/etc/schemata.yaml")
	require.Equal(t, "/etc/schemata.yaml", Path())
}

func TestHandler(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	t.Run("default profile", func(t *testing.T) {
		h, err := cfg.Handler("")
		require.NoError(t, err)
		require.IsType(t, &equals.ExcludeHandler{}, h)
		require.Equal(t, []string{"comment"}, h.(*equals.ExcludeHandler).Names())
	})

	t.Run("include profile", func(t *testing.T) {
		h, err := cfg.Handler("structure")
		require.NoError(t, err)
		require.IsType(t, &equals.IncludeHandler{}, h)
		require.Equal(t, []string{"columns", "constraints", "dataType", "nullable"}, h.(*equals.IncludeHandler).Names())
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := cfg.Handler("missing")
		require.ErrorIs(t, err, ErrUnknownProfile)
	})

	t.Run("unconfigured default", func(t *testing.T) {
		h, err := Defaults().Handler(DefaultProfile)
		require.NoError(t, err)
		require.Empty(t, h.(*equals.ExcludeHandler).Names())
	})

	t.Run("handlers are private copies", func(t *testing.T) {
		h, err := cfg.Handler("")
		require.NoError(t, err)
		h.(*equals.ExcludeHandler).Add("engine")

		again, err := cfg.Handler("")
		require.NoError(t, err)
		require.Equal(t, []string{"comment"}, again.(*equals.ExcludeHandler).Names())
		require.Empty(t, equals.Default().Names())
	})
}

func TestSource(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	t.Setenv("SCHEMATA_TEST_PASSWORD", "s3cret")
	s, err := cfg.Source("prod")
	require.NoError(t, err)
	require.Equal(t, "postgres", s.Driver)
	require.Equal(t, "postgres://schemata:s3cret@db:5432/app", s.DSN)

	_, err = cfg.Source("missing")
	require.ErrorIs(t, err, ErrUnknownSource)
	require.ErrorContains(t, err, "known: [baseline local prod]")
}
