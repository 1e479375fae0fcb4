package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/creativeyann17/squeezeit/pkg/compress"
)

// run executes the CLI in an isolated working directory and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestCompressCommand(t *testing.T) {
	dir := setupWorkdir(t)
	require.NoError(t, os.WriteFile("report.txt", []byte(strings.Repeat("quarterly numbers\n", 100)), 0644))
	require.NoError(t, os.WriteFile("data.csv", []byte("a,b\n1,2\n"), 0644))

	out, err := run(t, "compress", "--quiet", "-o", "out", "--stats",
		"--history", "history.log", "--report", "savings.yaml",
		"report.txt", "missing.txt", "data.csv")

	require.Error(t, err, "one failure must make the command fail")
	assert.Contains(t, err.Error(), "finished with 1 errors")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "✗ missing.txt - file does not exist", lines[0])
	assert.Equal(t, "✓ file report.txt compressed successfully", lines[1])
	assert.Equal(t, "✓ file data.csv compressed successfully", lines[2])
	assert.Contains(t, out, "Operations:        2")

	assert.FileExists(t, filepath.Join(dir, "out", "report.zip"))
	assert.FileExists(t, filepath.Join(dir, "out", "data.zip"))
	assert.NoFileExists(t, filepath.Join(dir, "out", "missing.zip"))

	history, err := os.ReadFile("history.log")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(history), "\n"))

	data, err := os.ReadFile("savings.yaml")
	require.NoError(t, err)
	var report compress.Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Files, 2)
}

func TestCompressCommandUsesConfigFile(t *testing.T) {
	dir := setupWorkdir(t)
	require.NoError(t, os.WriteFile("squeezeit.yaml", []byte("destination: from-config\nexclude: [\"*.log\"]\n"), 0644))
	require.NoError(t, os.WriteFile("keep.txt", []byte("keep"), 0644))
	require.NoError(t, os.WriteFile("noise.log", []byte("noise"), 0644))

	out, err := run(t, "compress", "--quiet", "keep.txt", "noise.log")
	require.NoError(t, err)
	assert.Equal(t, "✓ file keep.txt compressed successfully\n", out)
	assert.FileExists(t, filepath.Join(dir, "from-config", "keep.zip"))
	assert.NoFileExists(t, filepath.Join(dir, "from-config", "noise.zip"))
}

func TestCompressCommandHeader(t *testing.T) {
	setupWorkdir(t)
	require.NoError(t, os.WriteFile("one.txt", make([]byte, 1024), 0644))
	require.NoError(t, os.WriteFile("two.txt", make([]byte, 1024), 0644))

	// --verbose keeps progress bars out of the captured output
	out, err := run(t, "compress", "--verbose", "-o", "out", "one.txt", "two.txt", "absent.txt")
	require.Error(t, err)
	assert.Contains(t, out, "Files:       3 (0 excluded)")
	assert.Contains(t, out, "Input size:  2.0 KB")
	assert.Contains(t, out, "Destination: out")
}

func TestVerifyAndExtractCommands(t *testing.T) {
	dir := setupWorkdir(t)
	require.NoError(t, os.Mkdir("src", 0755))
	original := strings.Repeat("round trip\n", 50)
	require.NoError(t, os.WriteFile(filepath.Join("src", "notes.md"), []byte(original), 0644))

	_, err := run(t, "compress", "--quiet", "-o", "out", filepath.Join("src", "notes.md"))
	require.NoError(t, err)

	archive := filepath.Join("out", "notes.zip")

	out, err := run(t, "verify", "--source", "src", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "1 valid, 0 invalid")
	assert.Contains(t, out, "Matches source: yes")

	_, err = run(t, "extract", "--quiet", "-o", "restored", archive)
	require.NoError(t, err)
	restored, err := os.ReadFile(filepath.Join(dir, "restored", "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, original, string(restored))

	_, err = run(t, "extract", "--quiet", "-o", "restored", archive)
	assert.Error(t, err, "existing file must not be overwritten")

	_, err = run(t, "extract", "--quiet", "--overwrite", "-o", "restored", archive)
	assert.NoError(t, err)
}

func TestInfoCommand(t *testing.T) {
	setupWorkdir(t)
	require.NoError(t, os.WriteFile("page.html", make([]byte, 2048), 0644))

	out, err := run(t, "info", "page.html")
	require.NoError(t, err)
	assert.Contains(t, out, "Size:      2.0 KB")
	assert.Contains(t, out, "Text file: true")

	out, err = run(t, "info", "ghost.txt")
	assert.Error(t, err)
	assert.Contains(t, out, "Size:      unknown")
}

func TestVersionCommand(t *testing.T) {
	setupWorkdir(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "squeezeit dev")
	assert.Contains(t, out, "platform: "+runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, out, "go: "+runtime.Version())
}
