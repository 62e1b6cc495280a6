package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/document"
	"github.com/pseudomuto/schemata/pkg/introspect"
	"github.com/urfave/cli/v3"
)

// introspectCmd creates the command reading a live database into a document.
//
// The database is named either with --driver and --dsn, or with --source. The
// document is written to --out, in the format implied by its extension, or as
// YAML to stdout.
//
// Examples:
//
//	schemata introspect --driver sqlite --dsn app.db
//	schemata introspect --source prod --out db/baseline.yaml
func introspectCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "introspect",
		Usage: "Read a live database into a document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "driver",
				Aliases: []string{"d"},
				Usage:   fmt.Sprintf("the database driver %v", introspect.Drivers()),
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "the database connection string",
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "a database source from the config file",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "the document to write (.xml, .yaml, .yml or .sql)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := introspectCatalog(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out == "" {
				return document.Write(cmd.Writer, cat, document.YAML)
			}

			if err := document.WriteFile(out, cat); err != nil {
				return err
			}

			slog.Info("wrote catalog", "path", out, "schemas", cat.Schemas.Len())
			return nil
		},
	}
}

func introspectCatalog(ctx context.Context, cmd *cli.Command, cfg *config.Config) (*catalog.Catalog, error) {
	driver, dsn := cmd.String("driver"), cmd.String("dsn")

	if name := cmd.String("source"); name != "" {
		if driver != "" || dsn != "" {
			return nil, errors.New("--source cannot be combined with --driver or --dsn")
		}

		src, err := cfg.Source(name)
		if err != nil {
			return nil, err
		}
		if src.Driver == "" {
			return nil, errors.Errorf("source %s is a file, not a database", name)
		}
		driver, dsn = src.Driver, src.DSN
	}

	if driver == "" || dsn == "" {
		return nil, errors.New("either --source or both --driver and --dsn are required")
	}

	return introspect.Load(ctx, driver, dsn)
}
