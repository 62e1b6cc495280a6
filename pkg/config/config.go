package config

import (
	"io"
	"maps"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/equals"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the config file read when no other path is given.
	DefaultFile = "schemata.yaml"

	// DefaultProfile is the profile used when none is named.
	DefaultProfile = "default"

	// EnvVar names the environment variable overriding the config path.
	EnvVar = "SCHEMATA_CONFIG"
)

var (
	// ErrUnknownProfile is returned when a named comparison profile is not configured.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrUnknownSource is returned when a named source is not configured.
	ErrUnknownSource = errors.New("unknown source")
)

type (
	// Profile is a named comparison strategy. A profile either excludes the listed
	// properties from comparisons or compares only the listed properties. Names
	// are bare (comment) or qualified with a kind (column.comment).
	Profile struct {
		Exclude []string `yaml:"exclude,omitempty"`
		Include []string `yaml:"include,omitempty"`
	}

	// Source is a named catalog: either a live database, read with the
	// introspection driver, or a document on disk.
	Source struct {
		// Driver is a registered introspection driver (sqlite, postgres, mysql,
		// clickhouse).
		Driver string `yaml:"driver,omitempty"`

		// DSN is passed to the driver. $VAR and ${VAR} are expanded from the
		// environment so credentials can stay out of the file.
		DSN string `yaml:"dsn,omitempty"`

		// File is an XML, YAML or SQL document.
		File string `yaml:"file,omitempty"`
	}

	// Config represents the schemata configuration file.
	Config struct {
		// Profiles are comparison strategies by name
		Profiles map[string]Profile `yaml:"profiles,omitempty"`

		// Sources are catalogs by name, referenced on the command line as source:NAME
		Sources map[string]Source `yaml:"sources,omitempty"`
	}
)

// Defaults returns the configuration used when no file exists: no profiles and no
// sources.
func Defaults() *Config {
	return &Config{
		Profiles: map[string]Profile{},
		Sources:  map[string]Source{},
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Example:
//
//	yamlData := `
//	profiles:
//	  default:
//	    exclude: [comment]
//	sources:
//	  local:
//	    driver: sqlite
//	    dsn: file:app.db
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal schemata config")
	}

	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	if cfg.Sources == nil {
		cfg.Sources = map[string]Source{}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Path returns the config file to read: $SCHEMATA_CONFIG when set, DefaultFile
// otherwise.
func Path() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	return DefaultFile
}

func (c *Config) validate() error {
	for name, p := range c.Profiles {
		if len(p.Exclude) > 0 && len(p.Include) > 0 {
			return errors.Errorf("profile %s: exclude and include are mutually exclusive", name)
		}
	}

	for name, s := range c.Sources {
		switch {
		case s.File == "" && s.Driver == "":
			return errors.Errorf("source %s: either driver or file is required", name)
		case s.File != "" && s.Driver != "":
			return errors.Errorf("source %s: driver and file are mutually exclusive", name)
		}
	}

	return nil
}

// Handler returns the comparison handler of the named profile. An empty name
// selects DefaultProfile, which falls back to equals.Default() when it is not
// configured.
//
// Exclude profiles extend a copy of the shared default handler; include profiles
// compare the listed properties only.
func (c *Config) Handler(profile string) (equals.Handler, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	p, ok := c.Profiles[profile]
	if !ok {
		if profile == DefaultProfile {
			return equals.Default(), nil
		}
		return nil, errors.Wrapf(ErrUnknownProfile, "%s (known: %v)", profile, c.ProfileNames())
	}

	if len(p.Include) > 0 {
		return equals.NewInclude(p.Include...), nil
	}
	return equals.Default().Add(p.Exclude...), nil
}

// Source returns the named source with its DSN expanded.
func (c *Config) Source(name string) (Source, error) {
	s, ok := c.Sources[name]
	if !ok {
		return Source{}, errors.Wrapf(ErrUnknownSource, "%s (known: %v)", name, c.SourceNames())
	}

	s.DSN = os.ExpandEnv(s.DSN)
	return s, nil
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	return slices.Sorted(maps.Keys(c.Profiles))
}

// SourceNames returns the configured source names, sorted.
func (c *Config) SourceNames() []string {
	return slices.Sorted(maps.Keys(c.Sources))
}
