// pkg/verify/verify.go
package verify

import (
	"archive/zip"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/zeebo/blake3"

	"github.com/creativeyann17/squeezeit/pkg/compress"
)

// ProgressCallback is called for progress updates during verification
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type     EventType
	FilePath string
	Current  int
	Total    int
	Message  string
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileVerify
	EventComplete
	EventError
)

// Verify checks every archive in opts.Archives.
// Problems with individual archives are recorded in the result, never returned.
func Verify(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	total := len(opts.Archives)
	result := &Result{Archives: make([]ArchiveResult, 0, total)}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventStart,
			Total:   total,
			Message: fmt.Sprintf("Verifying %d archives", total),
		})
	}

	for i, path := range opts.Archives {
		ar := verifyArchive(path, opts)
		result.Archives = append(result.Archives, ar)

		if progressCb != nil {
			evType := EventFileVerify
			if !ar.IsValid() {
				evType = EventError
			}
			progressCb(ProgressEvent{
				Type:     evType,
				FilePath: path,
				Current:  i + 1,
				Total:    total,
			})
		}
	}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventComplete,
			Current: total,
			Total:   total,
			Message: "Verification complete",
		})
	}

	return result, nil
}

// verifyArchive runs structural checks and, if requested, data checks on one archive
func verifyArchive(path string, opts *Options) ArchiveResult {
	ar := ArchiveResult{ArchivePath: path}

	zr, err := zip.OpenReader(path)
	if err != nil {
		ar.Errors = append(ar.Errors, fmt.Errorf("%w: %v", ErrNotZip, err))
		return ar
	}
	defer zr.Close()
	zr.RegisterDecompressor(zip.Deflate, flate.NewReader)

	if info, err := os.Stat(path); err == nil {
		ar.ArchiveSize = info.Size()
	}

	if len(zr.File) != 1 {
		ar.Errors = append(ar.Errors, fmt.Errorf("%w: found %d", ErrEntryCount, len(zr.File)))
		return ar
	}

	entry := zr.File[0]
	ar.EntryName = entry.Name
	ar.Method = entry.Method
	ar.OriginalSize = int64(entry.UncompressedSize64)
	ar.CompressedSize = int64(entry.CompressedSize64)

	if strings.ContainsAny(entry.Name, `/\`) {
		ar.Errors = append(ar.Errors, fmt.Errorf("%w: %s", ErrNestedEntry, entry.Name))
	} else if want := filepath.Base(compress.ArchivePath(".", entry.Name)); want != filepath.Base(path) {
		ar.Errors = append(ar.Errors, fmt.Errorf("%w: entry %s belongs in %s", ErrNameMismatch, entry.Name, want))
	}

	if entry.Method != zip.Deflate && entry.Method != zip.Store {
		ar.Errors = append(ar.Errors, fmt.Errorf("%w: %d", ErrUnsupportedMethod, entry.Method))
		return ar
	}

	if !opts.VerifyData {
		return ar
	}

	digest, err := digestEntry(entry)
	ar.DataVerified = true
	if err != nil {
		ar.Errors = append(ar.Errors, err)
		return ar
	}
	ar.Digest = digest

	if opts.SourceDir != "" && !strings.ContainsAny(entry.Name, `/\`) {
		ar.SourceChecked = true
		srcDigest, err := digestFile(filepath.Join(opts.SourceDir, entry.Name))
		if err != nil {
			ar.Errors = append(ar.Errors, fmt.Errorf("hash source: %w", err))
			return ar
		}
		ar.SourceMatch = srcDigest == digest
		if !ar.SourceMatch {
			ar.Errors = append(ar.Errors, fmt.Errorf("%w: %s", ErrSourceMismatch, entry.Name))
		}
	}

	return ar
}

// digestEntry decompresses the entry through BLAKE3.
// The zip reader validates the CRC-32 once the stream is fully read.
func digestEntry(entry *zip.File) (string, error) {
	rc, err := entry.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open entry: %v", ErrCorruptData, err)
	}
	defer rc.Close()

	h := blake3.New()
	n, err := io.Copy(h, rc)
	if err != nil {
		if errors.Is(err, zip.ErrChecksum) {
			return "", fmt.Errorf("%w: checksum mismatch", ErrCorruptData)
		}
		return "", fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if uint64(n) != entry.UncompressedSize64 {
		return "", fmt.Errorf("%w: expected %d, got %d", ErrSizeMismatch, entry.UncompressedSize64, n)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// digestFile returns the hex BLAKE3 digest of a file on disk
func digestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
