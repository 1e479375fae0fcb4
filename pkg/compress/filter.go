// pkg/compress/filter.go
package compress

import (
	"fmt"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

// FilterOptions configures which candidate paths are handed to a batch
type FilterOptions struct {
	// Gitignore-style patterns, e.g. "*.log" or "build/"
	Patterns []string

	// Optional file with one pattern per line
	IgnoreFile string

	// Keep only files with a well-known text extension
	TextOnly bool
}

// Filter drops candidate paths before they reach the Compressor.
// A nil *Filter keeps everything.
type Filter struct {
	matcher  *ignore.GitIgnore
	textOnly bool
}

// NewFilter compiles the patterns. Returns nil when there is nothing to filter.
func NewFilter(opts FilterOptions) (*Filter, error) {
	f := &Filter{textOnly: opts.TextOnly}

	switch {
	case opts.IgnoreFile != "":
		m, err := ignore.CompileIgnoreFileAndLines(opts.IgnoreFile, opts.Patterns...)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrIgnoreFile, opts.IgnoreFile, err)
		}
		f.matcher = m
	case len(opts.Patterns) > 0:
		f.matcher = ignore.CompileIgnoreLines(opts.Patterns...)
	}

	if f.matcher == nil && !f.textOnly {
		return nil, nil
	}
	return f, nil
}

// Match reports whether path should be kept
func (f *Filter) Match(path string) bool {
	if f == nil {
		return true
	}
	if f.textOnly && !squeeze.IsTextFile(path) {
		return false
	}
	if f.matcher != nil && f.matcher.MatchesPath(filepath.ToSlash(path)) {
		return false
	}
	return true
}

// Apply splits paths into kept and skipped, preserving order
func (f *Filter) Apply(paths []string) (kept, skipped []string) {
	for _, p := range paths {
		if f.Match(p) {
			kept = append(kept, p)
		} else {
			skipped = append(skipped, p)
		}
	}
	return kept, skipped
}
