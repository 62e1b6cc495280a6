package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/pseudomuto/schemata/pkg/object"
	"github.com/urfave/cli/v3"
)

// like creates the command printing whether two catalogs are alike under the
// selected comparison handler. The catalog names are ignored so that a document
// and a database compare by content.
func like(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "like",
		Usage:     "Print whether two catalogs are alike",
		ArgsUsage: "<left> <right>",
		Flags: append(handlerFlags(),
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit with status 1 when the catalogs are not alike",
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

			alike := object.PropertiesMatch(left, right, h)
			fmt.Fprintln(cmd.Writer, alike)

			if cmd.Bool("exit-code") && !alike {
				return ErrDifferences
			}
			return nil
		},
	}
}
