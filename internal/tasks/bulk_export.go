package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/desertthunder/tunedex/internal/formatter"
	"github.com/desertthunder/tunedex/internal/models"
	"github.com/desertthunder/tunedex/internal/shared"
)

// BulkExport exports every playlist in c concurrently and writes a manifest summarizing the results.
//
// Playlists are rendered with c so songs resolve their artist and album names. Results keep playlist order.
// Cancelling ctx stops queueing new playlists; the manifest is still written for the exports that finished.
func BulkExport(ctx context.Context, c models.Catalog, opts BulkExportOpts, prog chan<- ProgressUpdate) (*BulkExportResult, error) {
	if opts.Format == "" {
		opts.Format = formatter.FormatJSON
	}
	if !slices.Contains(formatter.Formats, opts.Format) {
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, opts.Format)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "playlists_export"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultWorkers
	}
	if opts.NumWorkers > maxWorkers {
		opts.NumWorkers = maxWorkers
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	total := len(c.Playlists)
	result := &BulkExportResult{
		Format:          opts.Format,
		TotalPlaylists:  total,
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, total),
	}

	jobs := make(chan PlaylistExportJob, total)
	results := make(chan PlaylistExportResult, total)

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go exportWorker(ctx, &wg, c, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, p := range c.Playlists {
			select {
			case <-ctx.Done():
				return
			case jobs <- PlaylistExportJob{Index: i, Playlist: p}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	sendProgress(prog, queuedUpdate(total))

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			sendProgress(prog, exportCompletedUpdate(completed, total, res.Playlist, res.File))
		} else {
			result.FailedExports++
			sendProgress(prog, exportFailedUpdate(completed, total, res.Playlist, res.Error))
		}
	}

	slices.SortFunc(result.Results, func(a, b PlaylistExportResult) int {
		return a.index - b.index
	})

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	data, err := shared.MarshalJSON(result, true)
	if err != nil {
		return result, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	sendProgress(prog, manifestUpdate(manifestPath))

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("export interrupted: %w", err)
	}
	return result, nil
}

// exportWorker exports playlists from the jobs channel until it closes or ctx is cancelled.
func exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	c models.Catalog,
	jobs <-chan PlaylistExportJob,
	results chan<- PlaylistExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- exportSinglePlaylist(c, job, opts)
	}
}

// exportSinglePlaylist renders one playlist and writes it to its own file.
func exportSinglePlaylist(c models.Catalog, j PlaylistExportJob, opts BulkExportOpts) PlaylistExportResult {
	result := PlaylistExportResult{Playlist: j.Playlist.Title, index: j.Index}

	data, err := formatter.RenderPlaylist(c, j.Playlist, opts.Format)
	if err != nil {
		result.Error = fmt.Errorf("%s export failed: %w", opts.Format, err)
		result.Message = result.Error.Error()
		return result
	}

	path := filepath.Join(opts.OutputDir, exportFileName(j.Index, j.Playlist.Title, opts.Format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		result.Error = fmt.Errorf("write failed: %w", err)
		result.Message = result.Error.Error()
		return result
	}

	result.File = path
	result.Success = true
	return result
}
