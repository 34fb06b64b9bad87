package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	QueuePlaylists Phase = iota
	ExportPlaylist
	ExportFailed
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case QueuePlaylists:
		return "queue_playlists"
	case ExportPlaylist:
		return "export_playlist"
	case ExportFailed:
		return "export_failed"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

// sendProgress sends a progress update through the channel without blocking.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

func queuedUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueuePlaylists,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Queued %d playlists for export", total),
	}
}

func exportCompletedUpdate(step, total int, title, file string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Exported '%s' to %s", title, file),
	}
}

func exportFailedUpdate(step, total int, title string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to export '%s': %v", title, err),
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Wrote manifest to %s", path),
	}
}
