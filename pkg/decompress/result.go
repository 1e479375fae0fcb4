// pkg/decompress/result.go
package decompress

// Result contains statistics about the extraction
type Result struct {
	// Number of archives requested
	FilesTotal int

	// Number of files restored
	FilesProcessed int

	// Total compressed size in bytes
	CompressedSize int64

	// Total restored size in bytes
	DecompressedSize int64

	// Paths of restored files, in archive order
	Restored []string

	// List of errors encountered (non-fatal)
	Errors []error
}

// Success returns true if all files were processed without errors
func (r *Result) Success() bool {
	return len(r.Errors) == 0 && r.FilesProcessed == r.FilesTotal
}

// GetFilesTotal returns total files (interface method)
func (r *Result) GetFilesTotal() int {
	return r.FilesTotal
}

// GetFilesProcessed returns processed files (interface method)
func (r *Result) GetFilesProcessed() int {
	return r.FilesProcessed
}

// GetErrors returns the error list (interface method)
func (r *Result) GetErrors() []error {
	return r.Errors
}

// GetOriginalSize returns restored size (interface method)
func (r *Result) GetOriginalSize() int64 {
	return r.DecompressedSize
}

// GetCompressedSize returns compressed size (interface method)
func (r *Result) GetCompressedSize() int64 {
	return r.CompressedSize
}
