// pkg/decompress/errors.go
package decompress

import "errors"

var (
	// ErrInputRequired is returned when no archive is specified
	ErrInputRequired = errors.New("at least one archive is required")

	// ErrInvalidArchive is returned when an archive is not a single-file ZIP
	ErrInvalidArchive = errors.New("invalid archive format")

	// ErrUnsafePath is returned when an entry name would escape the output directory
	ErrUnsafePath = errors.New("entry name contains a path")

	// ErrFileExists is returned when output file exists and overwrite is false
	ErrFileExists = errors.New("file exists (use --overwrite to replace)")
)
