package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/bluebook/internal/commands"
	"github.com/colonyops/bluebook/internal/core/config"
	"github.com/colonyops/bluebook/internal/core/logging"
	"github.com/colonyops/bluebook/internal/core/styles"
	"github.com/colonyops/bluebook/internal/navigator"
	"github.com/colonyops/bluebook/pkg/executil"
	"github.com/colonyops/bluebook/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &navigator.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "bluebook",
		Usage:     "Navigate indexed bluebook documents",
		UsageText: "bluebook [global options] command [command options]",
		Description: `bluebook browses the part, section and subsection index of the documents on a
bluebook server and opens the page you pick in your browser.

Run 'bluebook' with no arguments to open the interactive navigator.
Run 'bluebook open <document> --part <title>' to jump straight to a page.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("BLUEBOOK_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("BLUEBOOK_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BLUEBOOK_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "server",
				Usage:       "document server URL (overrides server.url)",
				Sources:     cli.EnvVars("BLUEBOOK_SERVER"),
				Destination: &flags.Server,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, logging.ContextHook{})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.Server != "" {
				cfg.Server.URL = flags.Server
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("invalid --server: %w", err)
				}
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			styles.SetTheme(cfg.Palette())

			// Populate the pre-allocated App (commands already hold a pointer to it)
			a, err := navigator.NewApp(cfg, &executil.RealExecutor{})
			if err != nil {
				return ctx, err
			}
			*app = *a

			log.Debug().Str("server", cfg.Server.URL).Str("config", flags.ConfigPath).Msg("configured")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, app)

	root = commands.NewLsCmd(flags, app).Register(root)
	root = commands.NewTocCmd(flags, app).Register(root)
	root = commands.NewOpenCmd(flags, app).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)
	root = commands.NewDoctorCmd(flags, app).Register(root)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'bluebook --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
