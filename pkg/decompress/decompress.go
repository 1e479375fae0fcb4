// pkg/decompress/decompress.go
package decompress

import "fmt"

// ProgressCallback is called for various progress events
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type     EventType
	FilePath string
	Current  int64
	Total    int64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileStart
	EventFileProgress
	EventFileComplete
	EventComplete
	EventError
)

// Decompress restores the single entry of every archive into opts.OutputPath.
// A failing archive is recorded in Result.Errors and does not stop the others.
func Decompress(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{FilesTotal: len(opts.Archives)}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:  EventStart,
			Total: int64(result.FilesTotal),
		})
	}

	for _, path := range opts.Archives {
		if err := extractZipFile(path, opts, progressCb, result); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			if progressCb != nil {
				progressCb(ProgressEvent{
					Type:     EventError,
					FilePath: path,
				})
			}
		}
	}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventComplete,
			Current: int64(result.FilesProcessed),
			Total:   int64(result.FilesTotal),
		})
	}

	return result, nil
}
