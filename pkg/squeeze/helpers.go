// pkg/squeeze/helpers.go
package squeeze

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// UnknownSize is what FormatSize returns for a negative (unknown) byte count
const UnknownSize = "unknown"

// OperationType indicates whether the operation is compression or extraction
type OperationType string

const (
	OperationCompress OperationType = "compress"
	OperationExtract  OperationType = "extract"
)

// ProgressEvent is a generic progress event shared by compress and extract
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

// Result is implemented by both compress and extract results
type Result interface {
	GetFilesTotal() int
	GetFilesProcessed() int
	GetErrors() []error
	GetOriginalSize() int64
	GetCompressedSize() int64
}

// ProgressBarCallback creates a progress callback that displays multi-progress bars.
// Returns the callback function and the progress container (call Wait() after operation)
func ProgressBarCallback() (func(ProgressEvent), *mpb.Progress) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var overallBar *mpb.Bar
	var fileBars sync.Map // map[string]*mpb.Bar

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			overallBar = progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name("Total", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarPriority(1000), // bottom
			)

		case EventFileStart:
			// Empty files complete instantly, no bar needed
			if event.Total == 0 {
				return
			}
			shortName := TruncateLeft(event.FilePath, 30)
			bar := progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name(shortName, decor.WC{C: decor.DindentRight | decor.DextraSpace, W: 32}),
				),
				mpb.AppendDecorators(
					decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarRemoveOnComplete(),
			)
			fileBars.Store(event.FilePath, bar)

		case EventFileProgress:
			if bar, ok := fileBars.Load(event.FilePath); ok {
				bar.(*mpb.Bar).SetCurrent(event.Current)
			}

		case EventFileComplete:
			if bar, ok := fileBars.LoadAndDelete(event.FilePath); ok {
				b := bar.(*mpb.Bar)
				if event.Total > 0 {
					b.SetCurrent(event.Total)
				} else {
					b.Abort(true)
				}
			}
			if overallBar != nil {
				overallBar.Increment()
			}

		case EventError:
			if bar, ok := fileBars.LoadAndDelete(event.FilePath); ok {
				bar.(*mpb.Bar).Abort(true)
			}
			if overallBar != nil {
				overallBar.Increment()
			}

		case EventComplete:
			// An empty batch never gets incremented; close the bar explicitly
			if overallBar != nil && event.Total == 0 {
				overallBar.Abort(false)
			}
		}
	}

	return callback, progress
}

// FormatSummary formats a result into a human-readable summary string
func FormatSummary(result Result, operation OperationType) string {
	var sb strings.Builder

	errors := result.GetErrors()
	if len(errors) > 0 {
		fmt.Fprintf(&sb, "Completed with %d errors:\n", len(errors))
		for _, e := range errors {
			fmt.Fprintf(&sb, "  - %v\n", e)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "  Files processed: %d / %d\n", result.GetFilesProcessed(), result.GetFilesTotal())

	if operation == OperationCompress {
		fmt.Fprintf(&sb, "  Original size:   %s\n", FormatSize(result.GetOriginalSize()))
		fmt.Fprintf(&sb, "  Archived size:   %s\n", FormatSize(result.GetCompressedSize()))
		fmt.Fprintf(&sb, "  Space saved:     %.1f%%\n",
			SavingsPercent(result.GetOriginalSize(), result.GetCompressedSize()))
	} else {
		fmt.Fprintf(&sb, "  Archived size:   %s\n", FormatSize(result.GetCompressedSize()))
		fmt.Fprintf(&sb, "  Restored size:   %s\n", FormatSize(result.GetOriginalSize()))
	}

	return sb.String()
}

// FormatSize formats a byte count using binary units (B, KB, MB, GB).
// A negative count means the size is unknown.
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	switch {
	case bytes < 0:
		return UnknownSize
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// SavingsPercent returns how much smaller after is than before, in percent.
// The result is clamped to [0, 100]; a non-positive before yields 0.
func SavingsPercent(before, after int64) float64 {
	if before <= 0 {
		return 0
	}
	saved := float64(before-after) / float64(before) * 100
	return max(0, min(100, saved))
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	// Try to preserve at least the filename
	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
