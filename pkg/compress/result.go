// pkg/compress/result.go
package compress

// Outcome is the result of compressing one file: either Success or Failure
type Outcome interface {
	SourcePath() string
	outcome()
}

// Success describes an archive that was written
type Success struct {
	Path           string
	ArchivePath    string
	Message        string
	OriginalSize   int64
	CompressedSize int64
}

// Failure describes a file whose archive could not be written
type Failure struct {
	Path    string
	Message string
	Err     error
}

func (s Success) SourcePath() string { return s.Path }
func (f Failure) SourcePath() string { return f.Path }

func (Success) outcome() {}
func (Failure) outcome() {}

// Validation partitions candidate paths, preserving input order in both halves
type Validation struct {
	Valid   []string
	Invalid []ValidationError
}

// BatchResult is returned by CompressMany
type BatchResult struct {
	SuccessCount int
	FailureCount int

	// Validation failures first (input order), then one message per
	// compression outcome (input order of valid paths)
	Messages []string

	Invalid  []ValidationError
	Outcomes []Outcome
}

// Total returns the number of paths handled by the batch
func (r *BatchResult) Total() int {
	return r.SuccessCount + r.FailureCount
}

// Success returns true if every path was archived
func (r *BatchResult) Success() bool {
	return r.FailureCount == 0
}

// GetFilesTotal returns total files (interface method)
func (r *BatchResult) GetFilesTotal() int {
	return r.Total()
}

// GetFilesProcessed returns archived files (interface method)
func (r *BatchResult) GetFilesProcessed() int {
	return r.SuccessCount
}

// GetErrors returns validation and compression errors in message order (interface method)
func (r *BatchResult) GetErrors() []error {
	var errs []error
	for _, inv := range r.Invalid {
		errs = append(errs, inv)
	}
	for _, o := range r.Outcomes {
		if f, ok := o.(Failure); ok {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// GetOriginalSize returns total size of archived sources (interface method)
func (r *BatchResult) GetOriginalSize() int64 {
	var total int64
	for _, o := range r.Outcomes {
		if s, ok := o.(Success); ok {
			total += s.OriginalSize
		}
	}
	return total
}

// GetCompressedSize returns total size of written archives (interface method)
func (r *BatchResult) GetCompressedSize() int64 {
	var total int64
	for _, o := range r.Outcomes {
		if s, ok := o.(Success); ok {
			total += s.CompressedSize
		}
	}
	return total
}
