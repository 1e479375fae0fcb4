// pkg/decompress/progress.go
package decompress

import (
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

// ProgressBarCallback creates a progress callback that displays multi-progress bars
// Returns the callback function and the progress container (call Wait() after extraction)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	genericCb, progress := squeeze.ProgressBarCallback()

	callback := func(event ProgressEvent) {
		genericCb(squeeze.ProgressEvent{
			Type:     squeeze.EventType(event.Type),
			FilePath: event.FilePath,
			Current:  event.Current,
			Total:    event.Total,
		})
	}

	return callback, progress
}

// FormatSummary formats an extraction result into a human-readable summary string
func FormatSummary(result *Result) string {
	return squeeze.FormatSummary(result, squeeze.OperationExtract)
}
