// package tasks contains long-running catalog jobs
package tasks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/desertthunder/tunedex/internal/formatter"
	"github.com/desertthunder/tunedex/internal/models"
)

const (
	defaultWorkers = 4
	maxWorkers     = 16
)

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format     formatter.Format // Export format (default: json)
	OutputDir  string           // Output directory, created when missing (default: playlists_export)
	NumWorkers int              // Concurrent workers (default: 4, capped at 16)
}

// PlaylistExportJob is one unit of work for an export worker.
type PlaylistExportJob struct {
	Index    int
	Playlist models.Playlist
}

// PlaylistExportResult records the outcome of exporting a single playlist.
type PlaylistExportResult struct {
	Playlist string `json:"playlist"`
	File     string `json:"file,omitempty"`
	Success  bool   `json:"success"`
	Error    error  `json:"-"`
	Message  string `json:"error,omitempty"`
	index    int
}

// BulkExportResult summarizes a bulk export and is written as the manifest.
type BulkExportResult struct {
	Format            formatter.Format       `json:"format"`
	TotalPlaylists    int                    `json:"total_playlists"`
	SuccessfulExports int                    `json:"successful_exports"`
	FailedExports     int                    `json:"failed_exports"`
	OutputDirectory   string                 `json:"output_directory"`
	ManifestPath      string                 `json:"-"`
	Results           []PlaylistExportResult `json:"results"`
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// exportFileName derives a file name from the playlist's position and title.
func exportFileName(index int, title string, f formatter.Format) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(title, "_"), "_")
	if slug == "" {
		slug = "playlist"
	}

	var ext string
	switch f {
	case formatter.FormatText:
		ext = "txt"
	case formatter.FormatMarkdown:
		ext = "md"
	default:
		ext = string(f)
	}

	return fmt.Sprintf("%03d_%s.%s", index+1, strings.ToLower(slug), ext)
}
