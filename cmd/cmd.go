// submodule cmd contains command definitions
package main

import (
	"fmt"
	"strings"

	"github.com/desertthunder/tunedex/internal/formatter"
	"github.com/urfave/cli/v3"
)

func formatUsage() string {
	names := make([]string, len(formatter.Formats))
	for i, f := range formatter.Formats {
		names[i] = string(f)
	}
	return fmt.Sprintf("Output format (%s)", strings.Join(names, ", "))
}

// serveCommand runs the HTTP API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the catalog over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Catalog script applied before serving (overrides catalog.seed_path)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides server.port)",
			},
		},
		Action: r.Serve,
	}
}

// replayCommand applies a catalog script and prints the result
func replayCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "Apply a catalog script to an empty catalog and print the result",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "script"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   formatUsage(),
				Value:   string(formatter.FormatText),
			},
			&cli.StringFlag{
				Name:  "playlist",
				Usage: "Print only the playlist with this title",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the rendered catalog to this file instead of stdout",
			},
		},
		Action: r.Replay,
	}
}

// exportCommand writes each playlist to its own file
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Apply a catalog script and export every playlist to a directory",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "script"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   formatUsage(),
				Value:   string(formatter.FormatJSON),
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory",
				Value:   "playlists_export",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent export workers",
				Value:   4,
			},
		},
		Action: r.Export,
	}
}

// browseCommand opens the terminal browser
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui", "ui"},
		Usage:   "Apply a catalog script and browse it interactively",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "script"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "File receiving log output while the browser is open",
				Value: "./tmp/tunedex-tui.log",
			},
		},
		Action: r.Browse,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration file operations",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination path",
						Value: "config.toml",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
