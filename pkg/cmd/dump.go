package cmd

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/document"
	"github.com/sahilm/fuzzy"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const maxSuggestions = 3

// dump creates the command writing a catalog as a document, or with --path the
// property map of one object as YAML.
//
// Examples:
//
//	schemata dump --format xml db/schema.sql
//	schemata dump --path public.emp.salary source:prod
func dump(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Write a catalog, or one of its objects",
		ArgsUsage: "<catalog>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "the object to dump, as schema[.member[.child]]",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "the document format (yaml, xml or sql)",
				Value:   string(document.YAML),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one catalog argument is required")
			}

			cat, err := loadCatalog(ctx, cfg, cmd.Args().First())
			if err != nil {
				return err
			}

			path := cmd.String("path")
			if path == "" {
				format, err := document.ParseFormat(cmd.String("format"))
				if err != nil {
					return err
				}
				return document.Write(cmd.Writer, cat, format)
			}

			node, err := cat.Lookup(path)
			if err != nil {
				return withSuggestions(err, path, cat)
			}

			enc := yaml.NewEncoder(cmd.Writer)
			enc.SetIndent(2)
			if err := enc.Encode(node.ToMap()); err != nil {
				return errors.Wrap(err, "failed to encode properties")
			}
			return enc.Close()
		},
	}
}

// withSuggestions adds the catalog paths closest to path to a lookup error.
func withSuggestions(err error, path string, cat *catalog.Catalog) error {
	matches := fuzzy.Find(path, cat.Paths())
	if len(matches) == 0 {
		return err
	}

	names := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, m.Str)
	}

	return errors.Wrapf(err, "did you mean %s?", strings.Join(names, ", "))
}
