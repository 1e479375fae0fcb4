// pkg/compress/compress_zip.go
package compress

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/creativeyann17/squeezeit/pkg/squeeze"
)

// ArchivePath returns where the archive for src is written:
// dest/<base name without extension>.zip.
// Sources sharing a base name map to the same archive; the later one overwrites.
func ArchivePath(dest, src string) string {
	name := filepath.Base(src)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		// dotfiles such as ".bashrc" have no extension to strip
		stem = name
	}
	return filepath.Join(dest, stem+".zip")
}

// zipStats reports sizes of a written archive
type zipStats struct {
	origSize int64
	compSize int64
}

// writeZip writes a single-entry ZIP of src at dst.
// The archive is built in a temp file next to dst and renamed into place,
// so dst is either the complete new archive or untouched.
func writeZip(src, dst string, level int, progressCb ProgressCallback) (zipStats, error) {
	var st zipStats
	name := filepath.Base(src)
	fail := func(op string, kind ErrorKind, err error) (zipStats, error) {
		return st, &CompressionError{Name: name, Op: op, Kind: kind, Err: err}
	}

	file, err := os.Open(src)
	if err != nil {
		return fail("open", KindIO, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fail("stat", KindIO, err)
	}
	st.origSize = info.Size()

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:     EventFileStart,
			FilePath: src,
			Total:    st.origSize,
		})
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".squeezeit-*.tmp")
	if err != nil {
		return fail("create temp", KindIO, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	counter := &squeeze.CountingWriter{Writer: tmp}
	zw := zip.NewWriter(counter)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fail("create header", KindEncoding, err)
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fail("create header", KindEncoding, err)
	}

	var written int64
	reader := &squeeze.ProgressReader{
		Reader: file,
		OnRead: func(n int) {
			written += int64(n)
			if progressCb != nil {
				progressCb(ProgressEvent{
					Type:     EventFileProgress,
					FilePath: src,
					Current:  written,
					Total:    st.origSize,
				})
			}
		},
	}

	buf := getReadBuffer()
	_, err = io.CopyBuffer(w, reader, buf)
	putReadBuffer(buf)
	if err != nil {
		return fail("write", KindIO, err)
	}

	if err := zw.Close(); err != nil {
		return fail("finalize", KindEncoding, err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", KindIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fail("close", KindIO, err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return fail("rename", KindIO, err)
	}
	committed = true

	st.compSize = counter.Count
	return st, nil
}
