// pkg/compress/oplog.go
package compress

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// NoOperations is reported as the last entry of an empty log
const NoOperations = "no operations"

// TimestampLayout formats operation log timestamps
const TimestampLayout = "2006-01-02 15:04:05.000000"

// OperationLog is an append-only, time-ordered record of compression attempts.
// It is safe for concurrent use and never trims itself.
type OperationLog struct {
	mu      sync.Mutex
	entries []string
	now     func() time.Time
}

// NewOperationLog creates an empty log; now defaults to time.Now
func NewOperationLog(now func() time.Time) *OperationLog {
	if now == nil {
		now = time.Now
	}
	return &OperationLog{now: now}
}

// Append records message as "<timestamp>: <message>" and returns the entry
func (l *OperationLog) Append(message string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := fmt.Sprintf("%s: %s", l.now().Format(TimestampLayout), message)
	l.entries = append(l.entries, entry)
	return entry
}

// Entries returns a copy of all entries, oldest first
func (l *OperationLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *OperationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Last returns the most recent entry, or NoOperations
func (l *OperationLog) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return NoOperations
	}
	return l.entries[len(l.entries)-1]
}

// Clear empties the log
func (l *OperationLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// AppendToFile appends every entry as one line to path, creating it if needed
func (l *OperationLog) AppendToFile(path string) error {
	entries := l.Entries()
	if len(entries) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, e := range entries {
		w.WriteString(e)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write history file: %w", err)
	}
	return f.Close()
}

// Stats is a read-only snapshot of a Compressor
type Stats struct {
	OperationCount int
	LastEntry      string
	Level          int
	Destination    string
}

func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Operations:        %d\n", s.OperationCount)
	fmt.Fprintf(&sb, "Last operation:    %s\n", s.LastEntry)
	fmt.Fprintf(&sb, "Compression level: %d\n", s.Level)
	fmt.Fprintf(&sb, "Destination:       %s\n", s.Destination)
	return sb.String()
}
