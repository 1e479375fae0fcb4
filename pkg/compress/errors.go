// pkg/compress/errors.go
package compress

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationRequired is returned when no destination directory is given
	ErrDestinationRequired = errors.New("destination directory is required")

	// ErrDestination is wrapped by DestinationError when the destination cannot be created
	ErrDestination = errors.New("cannot create destination directory")

	// ErrIgnoreFile is returned when an ignore file cannot be read
	ErrIgnoreFile = errors.New("cannot read ignore file")
)

// Reason explains why a path failed validation
type Reason string

const (
	ReasonNotExist         Reason = "file does not exist"
	ReasonPermissionDenied Reason = "read permission denied"
)

// ValidationError marks a path that was excluded from compression
type ValidationError struct {
	Path   string
	Reason Reason
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s - %s", e.Path, e.Reason)
}

// ErrorKind classifies a compression failure
type ErrorKind string

const (
	KindIO       ErrorKind = "io"
	KindEncoding ErrorKind = "encoding"
)

// CompressionError is a per-file failure while writing an archive
type CompressionError struct {
	Name string // source base name
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("error compressing file %s: %s: %v", e.Name, e.Op, e.Err)
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// DestinationError is the only batch-fatal error: it is returned by New
type DestinationError struct {
	Path string
	Err  error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrDestination, e.Path, e.Err)
}

func (e *DestinationError) Unwrap() []error {
	return []error{ErrDestination, e.Err}
}
