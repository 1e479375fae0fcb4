// pkg/squeeze/fileinfo.go
package squeeze

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

var textExtensions = map[string]bool{
	".txt":  true,
	".csv":  true,
	".json": true,
	".xml":  true,
	".html": true,
	".css":  true,
	".js":   true,
	".py":   true,
	".md":   true,
}

// FileInfo describes a candidate file for display
type FileInfo struct {
	Name      string
	Path      string
	Size      int64 // -1 when the file could not be stat'ed
	ModTime   time.Time
	Extension string
	IsText    bool
	Err       error
}

// Extension returns the lower-cased extension of path, including the dot
func Extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsTextFile reports whether path has a well-known text extension
func IsTextFile(path string) bool {
	return textExtensions[Extension(path)]
}

// FileSize returns the size of path in bytes, or -1 if it cannot be determined
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// Describe collects display information about path.
// Stat failures are recorded in Err rather than returned.
func Describe(path string) FileInfo {
	fi := FileInfo{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      -1,
		Extension: Extension(path),
	}

	info, err := os.Stat(path)
	if err != nil {
		fi.Err = err
		return fi
	}

	fi.Size = info.Size()
	fi.ModTime = info.ModTime()
	fi.IsText = IsTextFile(path)
	return fi
}
