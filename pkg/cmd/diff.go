package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/object"
	"github.com/pseudomuto/schemata/pkg/report"
	"github.com/urfave/cli/v3"
)

// diff creates the command reporting the differences between two catalogs.
//
// The report lists every added, deleted and modified object below the catalogs,
// the changed properties of modified objects and probable renames. Renames are
// only hints: the renamed object is still reported as deleted and added.
//
// Examples:
//
//	# Text report
//	schemata diff db/baseline.yaml db/schema.sql
//
//	# YAML report, failing when anything changed
//	schemata diff --format yaml --exit-code source:prod db/schema.sql
func diff(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Report the differences between two catalogs",
		ArgsUsage: "<left> <right>",
		Flags: append(handlerFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("the report format %v", report.Formats),
				Value:   string(report.Text),
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "colour the text report",
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit with status 1 when the catalogs differ",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			left, right, err := loadPair(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			h, err := handler(cmd, cfg)
			if err != nil {
				return err
			}

			r := report.New(object.Compare(left, right, h), h)
			opts := report.Options{
				Format: report.Format(cmd.String("format")),
				Color:  cmd.Bool("color"),
			}
			if err := r.Write(cmd.Writer, opts); err != nil {
				return err
			}

			if cmd.Bool("exit-code") && r.HasChanges() {
				return ErrDifferences
			}
			return nil
		},
	}
}
