package compress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilterNoop(t *testing.T) {
	f, err := NewFilter(FilterOptions{})
	require.NoError(t, err)
	assert.Nil(t, f)

	kept, skipped := f.Apply([]string{"a.txt", "b.bin"})
	assert.Equal(t, []string{"a.txt", "b.bin"}, kept)
	assert.Empty(t, skipped)
}

func TestFilterPatterns(t *testing.T) {
	f, err := NewFilter(FilterOptions{Patterns: []string{"*.log", "build/"}})
	require.NoError(t, err)

	kept, skipped := f.Apply([]string{
		"notes.txt",
		"debug.log",
		"project/build/out.txt",
		"data/table.csv",
		"logs/app.log",
	})
	assert.Equal(t, []string{"notes.txt", "data/table.csv"}, kept)
	assert.Equal(t, []string{"debug.log", "project/build/out.txt", "logs/app.log"}, skipped)
}

func TestFilterNegation(t *testing.T) {
	f, err := NewFilter(FilterOptions{Patterns: []string{"*.log", "!keep.log"}})
	require.NoError(t, err)

	assert.False(t, f.Match("drop.log"))
	assert.True(t, f.Match("keep.log"))
}

func TestFilterTextOnly(t *testing.T) {
	f, err := NewFilter(FilterOptions{TextOnly: true})
	require.NoError(t, err)

	kept, skipped := f.Apply([]string{"a.TXT", "b.png", "c.json", "d"})
	assert.Equal(t, []string{"a.TXT", "c.json"}, kept)
	assert.Equal(t, []string{"b.png", "d"}, skipped)
}

func TestFilterIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	ignoreFile := filepath.Join(dir, ".squeezeignore")
	require.NoError(t, os.WriteFile(ignoreFile, []byte("# comment\n*.tmp\n"), 0644))

	f, err := NewFilter(FilterOptions{IgnoreFile: ignoreFile, Patterns: []string{"*.bak"}})
	require.NoError(t, err)

	kept, _ := f.Apply([]string{"x.tmp", "y.bak", "z.txt"})
	assert.Equal(t, []string{"z.txt"}, kept)

	_, err = NewFilter(FilterOptions{IgnoreFile: filepath.Join(dir, "absent")})
	assert.ErrorIs(t, err, ErrIgnoreFile)
}

func TestFilterDoubleStar(t *testing.T) {
	f, err := NewFilter(FilterOptions{Patterns: []string{"# backups", "**/*.bak", "", "**/temp/"}})
	require.NoError(t, err)

	tests := []struct {
		path string
		keep bool
	}{
		{"file.bak", false},
		{"a/file.bak", false},
		{"a/b/file.bak", false},
		{"a/temp/x.txt", false},
		{"keep.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.keep, f.Match(tt.path))
		})
	}
}
