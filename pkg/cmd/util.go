package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/document"
	"github.com/pseudomuto/schemata/pkg/equals"
	"github.com/pseudomuto/schemata/pkg/introspect"
	"github.com/urfave/cli/v3"

	// Registered introspection drivers.
	_ "github.com/pseudomuto/schemata/pkg/introspect/clickhouse"
	_ "github.com/pseudomuto/schemata/pkg/introspect/mysql"
	_ "github.com/pseudomuto/schemata/pkg/introspect/postgres"
	_ "github.com/pseudomuto/schemata/pkg/introspect/sqlite"
)

const sourcePrefix = "source:"

// loadCatalog resolves a catalog reference: source:NAME through cfg, anything
// else as a document path.
func loadCatalog(ctx context.Context, cfg *config.Config, ref string) (*catalog.Catalog, error) {
	cat, err := resolve(ctx, cfg, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", ref)
	}

	slog.Debug("loaded catalog", "ref", ref, "schemas", cat.Schemas.Len())
	return cat, nil
}

func resolve(ctx context.Context, cfg *config.Config, ref string) (*catalog.Catalog, error) {
	name, ok := strings.CutPrefix(ref, sourcePrefix)
	if !ok {
		return document.ReadFile(ref)
	}

	src, err := cfg.Source(name)
	if err != nil {
		return nil, err
	}

	if src.File != "" {
		return document.ReadFile(src.File)
	}
	return introspect.Load(ctx, src.Driver, src.DSN)
}

// loadPair loads the two catalog references a comparison command takes.
func loadPair(ctx context.Context, cmd *cli.Command, cfg *config.Config) (*catalog.Catalog, *catalog.Catalog, error) {
	if cmd.Args().Len() != 2 {
		return nil, nil, errors.New("exactly two catalog arguments are required")
	}

	left, err := loadCatalog(ctx, cfg, cmd.Args().Get(0))
	if err != nil {
		return nil, nil, err
	}

	right, err := loadCatalog(ctx, cfg, cmd.Args().Get(1))
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

func handlerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "the comparison profile from the config file",
			Value:   config.DefaultProfile,
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"x"},
			Usage:   "ignore a property (name or kind.name)",
		},
		&cli.StringSliceFlag{
			Name:    "include",
			Aliases: []string{"i"},
			Usage:   "compare only the named properties, replacing the profile",
		},
	}
}

// handler builds the comparison handler from --profile, --include and --exclude.
// --include replaces the profile with an include handler. --exclude then adds to
// an exclude handler or removes from an include handler.
func handler(cmd *cli.Command, cfg *config.Config) (equals.Handler, error) {
	h, err := cfg.Handler(cmd.String("profile"))
	if err != nil {
		return nil, err
	}

	if include := cmd.StringSlice("include"); len(include) > 0 {
		h = equals.NewInclude(include...)
	}

	exclude := cmd.StringSlice("exclude")
	switch t := h.(type) {
	case *equals.ExcludeHandler:
		t.Add(exclude...)
	case *equals.IncludeHandler:
		t.Remove(exclude...)
	}

	slog.Debug("comparison handler", "type", handlerName(h))
	return h, nil
}

func handlerName(h equals.Handler) string {
	switch t := h.(type) {
	case *equals.ExcludeHandler:
		return "exclude " + strings.Join(t.Names(), ",")
	case *equals.IncludeHandler:
		return "include " + strings.Join(t.Names(), ",")
	default:
		return "base"
	}
}
