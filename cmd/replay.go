package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/desertthunder/tunedex/internal/formatter"
	"github.com/desertthunder/tunedex/internal/shared"
	"github.com/urfave/cli/v3"
)

// Replay applies a catalog script and prints the catalog, or one playlist, in the requested format.
func (r *Runner) Replay(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	report, err := r.applyScript(cmd.StringArg("script"))
	if err != nil {
		return err
	}

	c := r.store.Snapshot()

	if title := cmd.String("playlist"); title != "" {
		p, err := r.store.Playlist(title)
		if err != nil {
			return err
		}
		data, err := formatter.RenderPlaylist(c, p, format)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	if output := cmd.String("output"); output != "" {
		if err := formatter.WriteExport(c, format, output); err != nil {
			return err
		}
		r.logger.Info("wrote catalog", "path", output, "format", format)
		return nil
	}

	if format == formatter.FormatJSON {
		return r.writeJSON(c, true)
	}

	data, err := formatter.Render(c, format)
	if err != nil {
		return err
	}
	if err := r.writePlain("%s", data); err != nil {
		return err
	}

	if format == formatter.FormatText {
		r.writeSummary(report.Total())
	}
	return nil
}

func (r *Runner) writeSummary(entries int) {
	r.writePlain("\n")
	r.writePlainHeader("Summary")
	r.writePlain("Entries applied: %d\n", entries)

	if name, ok := r.store.MostPopularArtist(); ok {
		r.writePlain("Most popular artist: %s\n", name)
	} else {
		r.writePlain("Most popular artist: none\n")
	}
	if title, ok := r.store.MostPopularSong(); ok {
		r.writePlain("Most popular song: %s\n", title)
	} else {
		r.writePlain("Most popular song: none\n")
	}
}

// ConfigInit writes the example configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		return fmt.Errorf("%w: --path", shared.ErrMissingArgument)
	}

	if cmd.Bool("force") {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove existing config: %w", err)
		}
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return nil
}
