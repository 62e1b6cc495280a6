package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// ErrDifferences is returned by commands run with --exit-code when the compared
// catalogs differ. It exits with status 1 without being logged.
var ErrDifferences = errors.New("catalogs differ")

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers a start hook running the schemata CLI with p.Args, then shuts the
// application down with the command's exit code.
//
// Global Flags:
//   - --config, -c: config file ($SCHEMATA_CONFIG, default schemata.yaml)
//   - --verbose, -v: debug logging
func Run(p Params) {
	app := NewApp(p.Version, p.Config, p.Commands...)

	p.Lifecycle.Append(fx.StartHook(func() {
		code := 0
		if err := app.Run(p.Ctx, p.Args); err != nil {
			code = 1
			if !errors.Is(err, ErrDifferences) {
				slog.Error("Error running command", "err", err)
			}
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
	}))
}

// NewApp returns the root command. cfg is replaced in place when --config names a
// file other than the one already loaded.
func NewApp(v *Version, cfg *config.Config, commands ...*cli.Command) *cli.Command {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", v.Timestamp)
	}

	return &cli.Command{
		Name:  "schemata",
		Usage: "Compare relational schema catalogs",
		Description: `schemata loads schema catalogs from documents or live databases and
compares them property by property, reporting what was added, deleted and
modified.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the schemata config file",
				Sources: cli.EnvVars(config.EnvVar),
				Value:   config.DefaultFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}

			if !cmd.IsSet("config") {
				return ctx, nil
			}

			loaded, err := config.LoadConfigFile(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			*cfg = *loaded
			slog.Debug("loaded config", "path", cmd.String("config"))
			return ctx, nil
		},
		Commands: commands,
	}
}
