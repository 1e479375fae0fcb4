package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/creativeyann17/squeezeit/pkg/compress"
)

// EnvPrefix is prepended to every environment override (SQUEEZEIT_LEVEL, SQUEEZEIT_LOGGING_LEVEL...)
const EnvPrefix = "SQUEEZEIT"

// Config represents the main configuration structure
type Config struct {
	Destination string        `mapstructure:"destination"`
	Level       int           `mapstructure:"level"`
	Threads     int           `mapstructure:"threads"`
	Exclude     []string      `mapstructure:"exclude"`
	IgnoreFile  string        `mapstructure:"ignore_file"`
	TextOnly    bool          `mapstructure:"text_only"`
	HistoryFile string        `mapstructure:"history_file"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Destination: "archives",
		Level:       compress.DefaultLevel,
		Threads:     1,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		},
	}
}

// Load reads configuration from file and environment variables.
// A missing config file is not an error; defaults are used instead.
func Load(configPath string) (*Config, error) {
	return LoadWith(viper.New(), configPath)
}

// LoadWith is Load on a caller-owned viper instance, so flags bound to v
// take precedence over file and environment values.
func LoadWith(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("squeezeit")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.squeezeit")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("destination", d.Destination)
	v.SetDefault("level", d.Level)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("exclude", d.Exclude)
	v.SetDefault("ignore_file", d.IgnoreFile)
	v.SetDefault("text_only", d.TextOnly)
	v.SetDefault("history_file", d.HistoryFile)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file_path", d.Logging.FilePath)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.compress", d.Logging.Compress)
}

// Validate validates and normalizes the configuration
func (c *Config) Validate() error {
	if c.Destination == "" {
		return fmt.Errorf("destination is required")
	}

	c.Level = compress.ClampLevel(c.Level)

	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// FilterOptions returns the path filter settings of the configuration
func (c *Config) FilterOptions() compress.FilterOptions {
	return compress.FilterOptions{
		Patterns:   c.Exclude,
		IgnoreFile: c.IgnoreFile,
		TextOnly:   c.TextOnly,
	}
}
