package main

import (
	"context"
	"sync"

	"github.com/desertthunder/tunedex/internal/formatter"
	"github.com/desertthunder/tunedex/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export applies a catalog script and writes every playlist to its own file.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	if _, err := r.applyScript(cmd.StringArg("script")); err != nil {
		return err
	}

	prog := make(chan tasks.ProgressUpdate, 32)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range prog {
			r.logger.Debug(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := tasks.BulkExport(ctx, r.store.Snapshot(), tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("dir"),
		NumWorkers: cmd.Int("workers"),
	}, prog)
	close(prog)
	wg.Wait()
	if err != nil {
		return err
	}

	r.writePlainHeader("Export Complete")
	r.writePlain("Playlists: %d exported, %d failed\n", result.SuccessfulExports, result.FailedExports)
	r.writePlain("Directory: %s\n", result.OutputDirectory)
	r.writePlain("Manifest: %s\n", result.ManifestPath)
	for _, res := range result.Results {
		if !res.Success {
			r.writePlain("  • %s: %s\n", res.Playlist, res.Message)
		}
	}
	return nil
}
