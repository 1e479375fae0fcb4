// pkg/compress/progress.go
package compress

import (
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

// ProgressCallback is called for various progress events.
// With MaxThreads > 1 it is invoked from several goroutines.
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type     EventType
	FilePath string
	Current  int64
	Total    int64
}

// EventType indicates the type of progress event
type EventType = squeeze.EventType

const (
	EventStart        = squeeze.EventStart
	EventFileStart    = squeeze.EventFileStart
	EventFileProgress = squeeze.EventFileProgress
	EventFileComplete = squeeze.EventFileComplete
	EventComplete     = squeeze.EventComplete
	EventError        = squeeze.EventError
)

// ProgressBarCallback creates a progress callback that displays multi-progress bars.
// Returns the callback function and the progress container (call Wait() after compression)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	genericCb, progress := squeeze.ProgressBarCallback()

	callback := func(event ProgressEvent) {
		genericCb(squeeze.ProgressEvent{
			Type:     event.Type,
			FilePath: event.FilePath,
			Current:  event.Current,
			Total:    event.Total,
		})
	}

	return callback, progress
}

// FormatSummary formats a batch result into a human-readable summary string
func FormatSummary(result *BatchResult) string {
	return squeeze.FormatSummary(result, squeeze.OperationCompress)
}
