// pkg/verify/result.go
package verify

import (
	"fmt"
	"strings"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

// Result contains verification results for every requested archive
type Result struct {
	Archives []ArchiveResult
}

// ArchiveResult describes one verified archive
type ArchiveResult struct {
	ArchivePath string
	ArchiveSize int64

	EntryName      string
	Method         uint16
	OriginalSize   int64 // uncompressed size from the entry header
	CompressedSize int64 // compressed size from the entry header

	// Populated when VerifyData=true
	DataVerified bool
	Digest       string // hex BLAKE3 of the decompressed entry

	// Populated when SourceDir is set
	SourceChecked bool
	SourceMatch   bool

	Errors []error
}

// IsValid returns true if the archive passed every requested check
func (a *ArchiveResult) IsValid() bool {
	return len(a.Errors) == 0
}

// ValidCount returns the number of archives that passed
func (r *Result) ValidCount() int {
	n := 0
	for i := range r.Archives {
		if r.Archives[i].IsValid() {
			n++
		}
	}
	return n
}

// IsValid returns true if every archive passed
func (r *Result) IsValid() bool {
	return r.ValidCount() == len(r.Archives)
}

// Errors returns all per-archive errors prefixed by archive path
func (r *Result) Errors() []error {
	var errs []error
	for _, a := range r.Archives {
		for _, err := range a.Errors {
			errs = append(errs, fmt.Errorf("%s: %w", a.ArchivePath, err))
		}
	}
	return errs
}

// Summary returns a human-readable summary of the verification result
func (r *Result) Summary() string {
	var sb strings.Builder

	for _, a := range r.Archives {
		status := "VALID"
		if !a.IsValid() {
			status = "INVALID"
		}
		fmt.Fprintf(&sb, "%s [%s]\n", a.ArchivePath, status)
		if a.EntryName != "" {
			fmt.Fprintf(&sb, "  Entry:      %s\n", a.EntryName)
			fmt.Fprintf(&sb, "  Original:   %s\n", squeeze.FormatSize(a.OriginalSize))
			fmt.Fprintf(&sb, "  Compressed: %s (%.1f%% saved)\n",
				squeeze.FormatSize(a.CompressedSize),
				squeeze.SavingsPercent(a.OriginalSize, a.CompressedSize))
		}
		if a.DataVerified && a.Digest != "" {
			fmt.Fprintf(&sb, "  BLAKE3:     %s\n", a.Digest)
		}
		if a.SourceChecked {
			match := "yes"
			if !a.SourceMatch {
				match = "no"
			}
			fmt.Fprintf(&sb, "  Matches source: %s\n", match)
		}
		for _, err := range a.Errors {
			fmt.Fprintf(&sb, "  - %v\n", err)
		}
	}

	fmt.Fprintf(&sb, "\nVerified %d archives: %d valid, %d invalid\n",
		len(r.Archives), r.ValidCount(), len(r.Archives)-r.ValidCount())
	return sb.String()
}
