// pkg/decompress/decompress_zip.go
package decompress

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
)

// extractZipFile restores the one entry of a single-file archive.
// The file is written to a temp name and renamed, so a failed extraction
// never leaves a truncated file behind.
func extractZipFile(zipPath string, opts *Options, progressCb ProgressCallback, result *Result) error {
	zipReader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	defer zipReader.Close()
	zipReader.RegisterDecompressor(zip.Deflate, flate.NewReader)

	if len(zipReader.File) != 1 {
		return fmt.Errorf("%w: expected 1 entry, found %d", ErrInvalidArchive, len(zipReader.File))
	}
	zipFile := zipReader.File[0]

	if strings.ContainsAny(zipFile.Name, `/\`) || zipFile.Name == ".." || zipFile.Name == "." {
		return fmt.Errorf("%w: %s", ErrUnsafePath, zipFile.Name)
	}

	outPath := filepath.Join(opts.OutputPath, zipFile.Name)
	if !opts.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s: %w", zipFile.Name, ErrFileExists)
		}
	}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:     EventFileStart,
			FilePath: zipPath,
			Total:    int64(zipFile.UncompressedSize64),
		})
	}

	if err := os.MkdirAll(opts.OutputPath, 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	rc, err := zipFile.Open()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	tmp, err := os.CreateTemp(opts.OutputPath, ".squeezeit-*.tmp")
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	tmpPath := tmp.Name()

	// Copy data with progress tracking
	var written int64
	buf := make([]byte, 32*1024)
	for {
		nr, errRead := rc.Read(buf)
		if nr > 0 {
			nw, errWrite := tmp.Write(buf[0:nr])
			if errWrite != nil {
				tmp.Close()
				os.Remove(tmpPath)
				return fmt.Errorf("write: %w", errWrite)
			}
			written += int64(nw)

			if progressCb != nil {
				progressCb(ProgressEvent{
					Type:     EventFileProgress,
					FilePath: zipPath,
					Current:  written,
					Total:    int64(zipFile.UncompressedSize64),
				})
			}
		}
		if errRead == io.EOF {
			break
		}
		if errRead != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("read: %w", errRead)
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close: %w", err)
	}
	if !zipFile.Modified.IsZero() {
		if err := os.Chtimes(tmpPath, zipFile.Modified, zipFile.Modified); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("chtimes: %w", err)
		}
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}

	result.FilesProcessed++
	result.DecompressedSize += written
	result.CompressedSize += int64(zipFile.CompressedSize64)
	result.Restored = append(result.Restored, outPath)

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:     EventFileComplete,
			FilePath: zipPath,
			Current:  written,
			Total:    int64(zipFile.UncompressedSize64),
		})
	}

	return nil
}
