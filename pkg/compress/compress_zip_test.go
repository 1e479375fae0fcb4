// pkg/compress/compress_zip_test.go
package compress

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestZipCompressionLevels(t *testing.T) {
	tempDir := t.TempDir()

	// Create a file with repetitive content (compresses well)
	testFile := filepath.Join(tempDir, "test.txt")
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&sb, "line %d of a fairly repetitive log file\n", i%97)
	}
	writeFile(t, testFile, sb.String())

	sizes := make(map[int]int64)
	for _, level := range []int{MinLevel, DefaultLevel, MaxLevel} {
		dst := filepath.Join(tempDir, fmt.Sprintf("level%d.zip", level))
		st, err := writeZip(testFile, dst, level, nil)
		if err != nil {
			t.Fatalf("writeZip at level %d failed: %v", level, err)
		}

		t.Logf("Level %d: Original=%d, Compressed=%d", level, st.origSize, st.compSize)

		if st.origSize != int64(sb.Len()) {
			t.Errorf("Level %d: expected original size %d, got %d", level, sb.Len(), st.origSize)
		}
		info, err := os.Stat(dst)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != st.compSize {
			t.Errorf("Level %d: reported size %d, file is %d", level, st.compSize, info.Size())
		}

		name, content := readArchive(t, dst)
		if name != "test.txt" || content != sb.String() {
			t.Errorf("Level %d: archive content mismatch", level)
		}
		sizes[level] = st.compSize
	}

	if sizes[MaxLevel] > sizes[MinLevel] {
		t.Errorf("Level %d produced a larger archive (%d) than level %d (%d)",
			MaxLevel, sizes[MaxLevel], MinLevel, sizes[MinLevel])
	}
}

func TestZipKeepsModTime(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "dated.csv")
	writeFile(t, src, "a,b\n")

	modTime := time.Date(2021, 6, 15, 8, 30, 0, 0, time.UTC)
	if err := os.Chtimes(src, modTime, modTime); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(tempDir, "dated.zip")
	if _, err := writeZip(src, dst, DefaultLevel, nil); err != nil {
		t.Fatalf("writeZip failed: %v", err)
	}

	zr, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	if got := zr.File[0].Modified; !got.Equal(modTime) {
		t.Errorf("Expected mod time %v, got %v", modTime, got)
	}
}

func TestZipConcurrentBatches(t *testing.T) {
	tempDir := t.TempDir()
	c := newTestCompressor(t, filepath.Join(tempDir, "out"), 4)

	// Each goroutine owns distinct file names
	const batches = 8
	const perBatch = 10

	var wg sync.WaitGroup
	results := make([]*BatchResult, batches)
	for b := 0; b < batches; b++ {
		var paths []string
		for i := 0; i < perBatch; i++ {
			p := filepath.Join(tempDir, "in", fmt.Sprintf("b%02d_f%02d.txt", b, i))
			writeFile(t, p, fmt.Sprintf("batch %d file %d\n", b, i))
			paths = append(paths, p)
		}

		wg.Add(1)
		go func(b int, paths []string) {
			defer wg.Done()
			results[b] = c.CompressMany(paths)
		}(b, paths)
	}
	wg.Wait()

	for b, r := range results {
		if r.SuccessCount != perBatch || r.FailureCount != 0 {
			t.Errorf("Batch %d: expected %d successes, got %d/%d", b, perBatch, r.SuccessCount, r.FailureCount)
		}
	}
	if got := c.Log().Len(); got != batches*perBatch {
		t.Errorf("Expected %d log entries, got %d", batches*perBatch, got)
	}

	entries, err := os.ReadDir(filepath.Join(tempDir, "out"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != batches*perBatch {
		t.Errorf("Expected %d archives, got %d", batches*perBatch, len(entries))
	}
}
