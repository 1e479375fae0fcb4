package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "squeezeit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should use defaults when no file is found", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		config, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "archives", config.Destination)
		assert.Equal(t, 6, config.Level)
		assert.Equal(t, 1, config.Threads)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, 10, config.Logging.MaxSize)
		assert.True(t, config.Logging.Compress)
	})

	t.Run("should load values from file", func(t *testing.T) {
		path := writeConfig(t, `
destination: ./out
level: 9
threads: 4
exclude: ["*.log", "tmp/"]
text_only: true
history_file: history.log
logging:
  level: DEBUG
  file_path: logs/squeezeit.log
  max_backups: 7
`)
		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "./out", config.Destination)
		assert.Equal(t, 9, config.Level)
		assert.Equal(t, 4, config.Threads)
		assert.Equal(t, []string{"*.log", "tmp/"}, config.Exclude)
		assert.True(t, config.TextOnly)
		assert.Equal(t, "history.log", config.HistoryFile)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "logs/squeezeit.log", config.Logging.FilePath)
		assert.Equal(t, 7, config.Logging.MaxBackups)
		assert.Equal(t, 30, config.Logging.MaxAge)
	})

	t.Run("should let environment override file", func(t *testing.T) {
		path := writeConfig(t, "level: 2\n")
		t.Setenv("SQUEEZEIT_LEVEL", "8")
		t.Setenv("SQUEEZEIT_LOGGING_LEVEL", "warn")

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8, config.Level)
		assert.Equal(t, "warn", config.Logging.Level)
	})

	t.Run("should let bound flags override everything", func(t *testing.T) {
		path := writeConfig(t, "destination: from-file\n")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("destination", "", "")
		require.NoError(t, flags.Parse([]string{"--destination", "from-flag"}))

		v := viper.New()
		require.NoError(t, v.BindPFlag("destination", flags.Lookup("destination")))

		config, err := LoadWith(v, path)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", config.Destination)
	})

	t.Run("should error on invalid YAML", func(t *testing.T) {
		path := writeConfig(t, "invalid: yaml: content: [")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("should error on unknown log level", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: loud\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantErr     bool
		wantLevel   int
		wantThreads int
	}{
		{"defaults", func(*Config) {}, false, 6, 1},
		{"level too low is clamped", func(c *Config) { c.Level = 0 }, false, 1, 1},
		{"level too high is clamped", func(c *Config) { c.Level = 42 }, false, 9, 1},
		{"zero threads means all CPUs", func(c *Config) { c.Threads = 0 }, false, 6, runtime.NumCPU()},
		{"empty destination", func(c *Config) { c.Destination = "" }, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, c.Level)
			assert.Equal(t, tt.wantThreads, c.Threads)
		})
	}
}

func TestFilterOptions(t *testing.T) {
	c := DefaultConfig()
	c.Exclude = []string{"*.bak"}
	c.IgnoreFile = ".squeezeignore"
	c.TextOnly = true

	opts := c.FilterOptions()
	assert.Equal(t, []string{"*.bak"}, opts.Patterns)
	assert.Equal(t, ".squeezeignore", opts.IgnoreFile)
	assert.True(t, opts.TextOnly)
}
