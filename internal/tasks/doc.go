// Package tasks runs long catalog operations with real-time progress reporting.
//
// # Bulk Export
//
// [BulkExport] writes every playlist of a catalog snapshot to its own file in one of the [formatter.Formats]:
//   - A fixed-size worker pool renders and writes playlists concurrently
//   - Failures are recorded per playlist and never abort the remaining exports
//   - A JSON manifest (export_manifest.json) summarizing the run is written to the output directory
//
// # Progress Reporting
//
// Operations accept an optional channel of [ProgressUpdate] values. Updates use select with default so a slow or
// absent reader never blocks the export.
package tasks
