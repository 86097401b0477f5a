// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize configuration and run database migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// generateCommand runs fixture generation against the live API
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Fetch API responses and write stabilized fixture files",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only collect one category (tracks, playlists, albums, artists, search, history, stream)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum elements kept from list responses",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Fixture output directory (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-db",
				Usage: "Skip recording the run in the local database",
			},
		},
		Action: r.Generate,
	}
}

// runsCommand inspects past generation runs
func runsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "Inspect past generation runs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded generation runs",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to show",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.RunsList,
			},
			{
				Name:  "show",
				Usage: "Show one run with per-fixture outcomes",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "id",
						Usage: "Run ID (defaults to the latest run)",
					},
					&cli.BoolFlag{
						Name:  "diffs",
						Usage: "Include unified diff text for changed fixtures",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.RunsShow,
			},
		},
	}
}

// fixturesCommand inspects the fixture files on disk
func fixturesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Inspect generated fixture files",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List fixture files under the output directory",
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.FixturesList,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse the latest run's fixtures and diffs interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
