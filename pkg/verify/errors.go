// pkg/verify/errors.go
package verify

import "errors"

var (
	// ErrInputRequired is returned when no archive is specified
	ErrInputRequired = errors.New("at least one archive is required")

	// ErrNotZip is returned when the file is not a readable ZIP archive
	ErrNotZip = errors.New("not a valid ZIP archive")

	// ErrEntryCount is returned when an archive does not hold exactly one entry
	ErrEntryCount = errors.New("archive must contain exactly one entry")

	// ErrNestedEntry is returned when the entry name carries a directory
	ErrNestedEntry = errors.New("entry name must not contain a directory")

	// ErrNameMismatch is returned when the archive name does not follow its entry name
	ErrNameMismatch = errors.New("archive name does not match entry name")

	// ErrUnsupportedMethod is returned for entries that are neither deflated nor stored
	ErrUnsupportedMethod = errors.New("unsupported compression method")

	// ErrCorruptData is returned when decompressed data fails integrity check
	ErrCorruptData = errors.New("data corruption detected")

	// ErrSizeMismatch is returned when the decompressed size differs from the header
	ErrSizeMismatch = errors.New("decompressed size does not match header")

	// ErrSourceMismatch is returned when an entry differs from its source file
	ErrSourceMismatch = errors.New("entry content differs from source file")
)
